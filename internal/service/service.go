package service

import (
	"go.uber.org/zap"

	"github.com/ishaansolanki9/StudyFlow/internal/store"
)

// Service aggregates all business services.
type Service struct {
	Year       YearService
	Course     CourseService
	Group      AssignmentGroupService
	Assignment AssignmentService
	Dashboard  DashboardService
	Export     ExportService
	Calendar   CalendarService
}

// NewService wires the services onto the shared store.
func NewService(st store.Store, logger *zap.Logger) *Service {
	return &Service{
		Year:       NewYearService(st, logger),
		Course:     NewCourseService(st, logger),
		Group:      NewAssignmentGroupService(st, logger),
		Assignment: NewAssignmentService(st, logger),
		Dashboard:  NewDashboardService(st, logger),
		Export:     NewExportService(st, logger),
		Calendar:   NewCalendarService(st, logger),
	}
}
