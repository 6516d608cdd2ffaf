package dto

// CreateYearRequest creates an academic year.
type CreateYearRequest struct {
	Name string `json:"name" binding:"required"`
}
