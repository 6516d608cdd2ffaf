package model

// Year is an academic year grouping courses, e.g. "2026/2027".
type Year struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
