package model

// Course is a single course, optionally attached to a year and semester.
//
// YearID may dangle only in hand-edited store documents: deleting a year
// cascades to its courses, so the API never produces a dangling reference.
type Course struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	Credits     float64  `json:"credits"`
	TargetGrade *float64 `json:"targetGrade"`
	YearID      *int     `json:"yearId"`
	Semester    string   `json:"semester"`
}
