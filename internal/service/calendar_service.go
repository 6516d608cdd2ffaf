package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/ishaansolanki9/StudyFlow/internal/dto"
	"github.com/ishaansolanki9/StudyFlow/internal/store"
)

// CalendarService renders due-dated assignments as an iCalendar feed so
// deadlines can be subscribed to from any calendar client.
type CalendarService interface {
	// AssignmentsFeed serializes every in-scope assignment carrying a
	// parsable due date as an all-day VEVENT. An empty scope yields an
	// empty calendar, not an error.
	AssignmentsFeed(ctx context.Context, q *dto.ScopeQuery) (string, error)
}

type calendarService struct {
	store  store.Store
	logger *zap.Logger
}

// NewCalendarService creates a CalendarService instance.
func NewCalendarService(st store.Store, logger *zap.Logger) CalendarService {
	return &calendarService{store: st, logger: logger}
}

func (s *calendarService) AssignmentsFeed(_ context.Context, q *dto.ScopeQuery) (string, error) {
	snap, err := s.store.Load()
	if err != nil {
		s.logger.Error("loading store failed", zap.Error(err))
		return "", err
	}

	courses, assignments := scope(snap, q)

	courseLabel := make(map[int]string, len(courses))
	for _, c := range courses {
		label := c.Code
		if label == "" {
			label = c.Name
		}
		courseLabel[c.ID] = label
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//StudyFlow//Assignment Deadlines//EN")
	cal.SetName("StudyFlow Assignments")

	now := time.Now().UTC()
	for _, a := range assignments {
		due, ok := parseDueDate(a.DueDate)
		if !ok {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("assignment-%d@studyflow", a.ID))
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(due)
		event.SetAllDayEndAt(due.AddDate(0, 0, 1))

		summary := a.Title
		if summary == "" {
			summary = fmt.Sprintf("Assignment %d", a.ID)
		}
		if label := courseLabel[a.CourseID]; label != "" {
			summary = fmt.Sprintf("%s (%s)", summary, label)
		}
		event.SetSummary(summary)
		event.SetDescription(fmt.Sprintf("Status: %s, weight: %g", a.Status, a.Weight))
	}

	return cal.Serialize(), nil
}
