package dto

import "github.com/ishaansolanki9/StudyFlow/internal/model"

// ScopeQuery narrows dashboard, export and calendar computations to one
// year and/or semester. Both filters are optional; absent means all.
type ScopeQuery struct {
	Year     *int   `form:"year" binding:"omitempty,gte=0"`
	Semester string `form:"semester"`
}

// CourseWorkload is the pending-assignment count for one course.
type CourseWorkload struct {
	CourseID     int    `json:"courseId"`
	CourseName   string `json:"courseName"`
	PendingCount int    `json:"pendingCount"`
}

// UpcomingAssignment is an assignment annotated with its owning course.
type UpcomingAssignment struct {
	model.Assignment
	Course *model.Course `json:"course"`
}

// DashboardResponse is the extended dashboard.
type DashboardResponse struct {
	ProjectedGPA     *float64             `json:"projectedGpa"`
	WorkloadByCourse []CourseWorkload     `json:"workloadByCourse"`
	Upcoming         []UpcomingAssignment `json:"upcoming"`
}

// DashboardSummaryResponse is the simple totals dashboard.
type DashboardSummaryResponse struct {
	TotalCourses     int     `json:"totalCourses"`
	TotalAssignments int     `json:"totalAssignments"`
	TotalWeight      float64 `json:"totalWeight"`
	CompletedWeight  float64 `json:"completedWeight"`
}
