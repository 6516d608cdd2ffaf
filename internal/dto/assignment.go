package dto

// CreateAssignmentRequest creates an assignment. Score and maxScore must
// be supplied together (validated in the service); dueDate, when present,
// is a "2006-01-02" date.
type CreateAssignmentRequest struct {
	CourseID int      `json:"courseId" binding:"required,gt=0"`
	GroupID  *int     `json:"groupId" binding:"omitempty,gt=0"`
	Title    string   `json:"title"`
	DueDate  string   `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Weight   float64  `json:"weight" binding:"omitempty,gte=0"`
	Status   string   `json:"status"`
	Score    *float64 `json:"score" binding:"omitempty,gte=0"`
	MaxScore *float64 `json:"maxScore" binding:"omitempty,gt=0"`
}

// UpdateAssignmentRequest partially updates an assignment.
type UpdateAssignmentRequest struct {
	CourseID *int     `json:"courseId" binding:"omitempty,gt=0"`
	GroupID  *int     `json:"groupId" binding:"omitempty,gt=0"`
	Title    *string  `json:"title"`
	DueDate  *string  `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Weight   *float64 `json:"weight" binding:"omitempty,gte=0"`
	Status   *string  `json:"status" binding:"omitempty,min=1"`
	Score    *float64 `json:"score" binding:"omitempty,gte=0"`
	MaxScore *float64 `json:"maxScore" binding:"omitempty,gt=0"`
}
