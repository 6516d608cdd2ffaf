package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/ishaansolanki9/StudyFlow/internal/dto"
	"github.com/ishaansolanki9/StudyFlow/internal/model"
	"github.com/ishaansolanki9/StudyFlow/internal/store"
)

// upcomingLimit caps the upcoming-assignments list of the dashboard.
const upcomingLimit = 10

// DashboardService derives read-only summaries from the current snapshot.
// Everything is recomputed per request; nothing here is persisted.
type DashboardService interface {
	// Summary returns the quick totals for the scoped courses.
	Summary(ctx context.Context, q *dto.ScopeQuery) (*dto.DashboardSummaryResponse, error)
	// Overview returns workload per course, the nearest due assignments
	// and the projected GPA for the scoped courses.
	Overview(ctx context.Context, q *dto.ScopeQuery) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	store  store.Store
	logger *zap.Logger
}

// NewDashboardService creates a DashboardService instance.
func NewDashboardService(st store.Store, logger *zap.Logger) DashboardService {
	return &dashboardService{store: st, logger: logger}
}

// scope applies the optional year/semester filters to the courses and
// keeps only assignments belonging to the filtered course set. Course
// order is preserved.
func scope(snap *store.Snapshot, q *dto.ScopeQuery) ([]model.Course, []model.Assignment) {
	courses := make([]model.Course, 0, len(snap.Courses))
	for _, c := range snap.Courses {
		if q.Year != nil && (c.YearID == nil || *c.YearID != *q.Year) {
			continue
		}
		if q.Semester != "" && c.Semester != q.Semester {
			continue
		}
		courses = append(courses, c)
	}

	inScope := make(map[int]bool, len(courses))
	for _, c := range courses {
		inScope[c.ID] = true
	}

	assignments := make([]model.Assignment, 0, len(snap.Assignments))
	for _, a := range snap.Assignments {
		if inScope[a.CourseID] {
			assignments = append(assignments, a)
		}
	}

	return courses, assignments
}

func (s *dashboardService) Summary(_ context.Context, q *dto.ScopeQuery) (*dto.DashboardSummaryResponse, error) {
	snap, err := s.store.Load()
	if err != nil {
		s.logger.Error("loading store failed", zap.Error(err))
		return nil, err
	}

	courses, assignments := scope(snap, q)

	summary := &dto.DashboardSummaryResponse{
		TotalCourses:     len(courses),
		TotalAssignments: len(assignments),
	}
	for _, a := range assignments {
		summary.TotalWeight += a.Weight
		if a.Status == model.StatusDone {
			summary.CompletedWeight += a.Weight
		}
	}

	return summary, nil
}

func (s *dashboardService) Overview(_ context.Context, q *dto.ScopeQuery) (*dto.DashboardResponse, error) {
	snap, err := s.store.Load()
	if err != nil {
		s.logger.Error("loading store failed", zap.Error(err))
		return nil, err
	}

	courses, assignments := scope(snap, q)

	return &dto.DashboardResponse{
		ProjectedGPA:     projectedGPA(courses, assignments),
		WorkloadByCourse: workloadByCourse(courses, assignments),
		Upcoming:         upcoming(courses, assignments, time.Now()),
	}, nil
}

// workloadByCourse counts not-done assignments per course, one entry per
// in-scope course in original order, zero counts included.
func workloadByCourse(courses []model.Course, assignments []model.Assignment) []dto.CourseWorkload {
	workload := make([]dto.CourseWorkload, 0, len(courses))
	for _, c := range courses {
		pending := 0
		for _, a := range assignments {
			if a.CourseID == c.ID && a.Status != model.StatusDone {
				pending++
			}
		}
		workload = append(workload, dto.CourseWorkload{
			CourseID:     c.ID,
			CourseName:   c.Name,
			PendingCount: pending,
		})
	}
	return workload
}

// upcoming returns the ten nearest due assignments, ascending by due date
// with stable ties, each annotated with its course. Assignments without a
// parsable due date are skipped; "due today" counts as upcoming all day,
// so date-only deadlines compare against the start of the current day.
func upcoming(courses []model.Course, assignments []model.Assignment, now time.Time) []dto.UpcomingAssignment {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	type dated struct {
		assignment model.Assignment
		due        time.Time
	}
	due := make([]dated, 0, len(assignments))
	for _, a := range assignments {
		t, ok := parseDueDate(a.DueDate)
		if !ok || t.Before(today) {
			continue
		}
		due = append(due, dated{assignment: a, due: t})
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].due.Before(due[j].due)
	})
	if len(due) > upcomingLimit {
		due = due[:upcomingLimit]
	}

	byID := make(map[int]*model.Course, len(courses))
	for i := range courses {
		byID[courses[i].ID] = &courses[i]
	}

	result := make([]dto.UpcomingAssignment, 0, len(due))
	for _, d := range due {
		result = append(result, dto.UpcomingAssignment{
			Assignment: d.assignment,
			Course:     byID[d.assignment.CourseID],
		})
	}
	return result
}

// parseDueDate accepts the canonical date-only format and, for documents
// written by hand, full RFC 3339 timestamps.
func parseDueDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

// projectedGPA maps each course's weighted percent through the grade step
// function and averages the results. Courses without graded assignments,
// or whose graded weight sums to zero, are excluded rather than counted
// as zero; with no qualifying course the GPA is absent.
func projectedGPA(courses []model.Course, assignments []model.Assignment) *float64 {
	var sum float64
	var count int

	for _, c := range courses {
		percent, ok := coursePercent(c.ID, assignments)
		if !ok {
			continue
		}
		sum += percentToGPA(percent)
		count++
	}

	if count == 0 {
		return nil
	}
	gpa := sum / float64(count)
	return &gpa
}

// coursePercent computes the 0-100 weighted score over the course's
// graded assignments: (Σ score/maxScore · weight) / (Σ weight) · 100.
func coursePercent(courseID int, assignments []model.Assignment) (float64, bool) {
	var earned, totalWeight float64
	graded := false

	for i := range assignments {
		a := &assignments[i]
		if a.CourseID != courseID || !a.Graded() {
			continue
		}
		graded = true
		totalWeight += a.Weight
		earned += (*a.Score / *a.MaxScore) * a.Weight
	}

	if !graded || totalWeight <= 0 {
		return 0, false
	}
	return earned / totalWeight * 100, true
}

// percentToGPA is the fixed 0-100 → 0.0-4.0 step function. It is a
// deliberate heuristic, not an accredited grading scale.
func percentToGPA(percent float64) float64 {
	switch {
	case percent >= 90:
		return 4.0
	case percent >= 80:
		return 3.0
	case percent >= 70:
		return 2.0
	case percent >= 60:
		return 1.0
	default:
		return 0.0
	}
}
