package model

// Well-known status values. The field is an open string so clients may
// introduce further states; only "done" carries meaning server-side.
const (
	StatusPending = "pending"
	StatusDone    = "done"
)

// Assignment is a single piece of work within a course.
//
// Score and MaxScore are set together once the assignment is graded;
// MaxScore must be positive for the assignment to count toward percent
// calculations. DueDate is a "2006-01-02" date string, empty when unset.
type Assignment struct {
	ID       int      `json:"id"`
	CourseID int      `json:"courseId"`
	GroupID  *int     `json:"groupId"`
	Title    string   `json:"title"`
	DueDate  string   `json:"dueDate"`
	Weight   float64  `json:"weight"`
	Status   string   `json:"status"`
	Score    *float64 `json:"score"`
	MaxScore *float64 `json:"maxScore"`
}

// Graded reports whether the assignment can contribute to a course percent.
func (a *Assignment) Graded() bool {
	return a.Score != nil && a.MaxScore != nil && *a.MaxScore > 0
}
