package model

// AssignmentGroup is a weighted bucket of assignments within a course,
// e.g. "Labs (30%)". Weights are relative; nothing normalizes them to 100.
type AssignmentGroup struct {
	ID       int     `json:"id"`
	CourseID int     `json:"courseId"`
	Name     string  `json:"name"`
	Weight   float64 `json:"weight"`
	Status   string  `json:"status"`
}
