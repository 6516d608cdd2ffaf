package handler

import "github.com/ishaansolanki9/StudyFlow/internal/service"

// Handler aggregates all HTTP handlers.
type Handler struct {
	Year       *YearHandler
	Course     *CourseHandler
	Group      *AssignmentGroupHandler
	Assignment *AssignmentHandler
	Dashboard  *DashboardHandler
	Export     *ExportHandler
	Calendar   *CalendarHandler
}

// NewHandler creates the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Year:       NewYearHandler(svc.Year),
		Course:     NewCourseHandler(svc.Course),
		Group:      NewAssignmentGroupHandler(svc.Group),
		Assignment: NewAssignmentHandler(svc.Assignment),
		Dashboard:  NewDashboardHandler(svc.Dashboard),
		Export:     NewExportHandler(svc.Export),
		Calendar:   NewCalendarHandler(svc.Calendar),
	}
}
