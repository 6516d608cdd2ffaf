package dto

// CreateCourseRequest creates a course. Omitted optional fields default to
// their zero values (empty string, 0, null).
type CreateCourseRequest struct {
	Name        string   `json:"name" binding:"required"`
	Code        string   `json:"code"`
	Credits     float64  `json:"credits" binding:"omitempty,gte=0"`
	TargetGrade *float64 `json:"targetGrade" binding:"omitempty,gte=0"`
	YearID      *int     `json:"yearId" binding:"omitempty,gt=0"`
	Semester    string   `json:"semester"`
}

// UpdateCourseRequest partially updates a course. Nil fields are left
// unchanged; there is no way to null out a set field through an update.
type UpdateCourseRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1"`
	Code        *string  `json:"code"`
	Credits     *float64 `json:"credits" binding:"omitempty,gte=0"`
	TargetGrade *float64 `json:"targetGrade" binding:"omitempty,gte=0"`
	YearID      *int     `json:"yearId" binding:"omitempty,gt=0"`
	Semester    *string  `json:"semester"`
}
