package dto

// CreateAssignmentGroupRequest creates an assignment group. Name defaults
// to "New Group" and status to "pending" when omitted.
type CreateAssignmentGroupRequest struct {
	CourseID int     `json:"courseId" binding:"required,gt=0"`
	Name     string  `json:"name"`
	Weight   float64 `json:"weight" binding:"omitempty,gte=0"`
	Status   string  `json:"status"`
}

// UpdateAssignmentGroupRequest partially updates an assignment group.
type UpdateAssignmentGroupRequest struct {
	CourseID *int     `json:"courseId" binding:"omitempty,gt=0"`
	Name     *string  `json:"name" binding:"omitempty,min=1"`
	Weight   *float64 `json:"weight" binding:"omitempty,gte=0"`
	Status   *string  `json:"status" binding:"omitempty,min=1"`
}
