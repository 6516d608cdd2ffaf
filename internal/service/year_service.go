package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ishaansolanki9/StudyFlow/internal/dto"
	"github.com/ishaansolanki9/StudyFlow/internal/model"
	"github.com/ishaansolanki9/StudyFlow/internal/store"
)

// YearService manages academic years.
type YearService interface {
	List(ctx context.Context) ([]model.Year, error)
	Create(ctx context.Context, req *dto.CreateYearRequest) (*model.Year, error)
	// Delete removes the year and cascades to its courses and, through
	// them, to their assignment groups and assignments. Deleting a
	// missing id is a no-op.
	Delete(ctx context.Context, id int) error
}

type yearService struct {
	store  store.Store
	logger *zap.Logger
}

// NewYearService creates a YearService instance.
func NewYearService(st store.Store, logger *zap.Logger) YearService {
	return &yearService{store: st, logger: logger}
}

func (s *yearService) List(_ context.Context) ([]model.Year, error) {
	snap, err := s.store.Load()
	if err != nil {
		s.logger.Error("loading store failed", zap.Error(err))
		return nil, err
	}
	return snap.Years, nil
}

func (s *yearService) Create(_ context.Context, req *dto.CreateYearRequest) (*model.Year, error) {
	snap, err := s.store.Load()
	if err != nil {
		s.logger.Error("loading store failed", zap.Error(err))
		return nil, err
	}

	year := model.Year{
		ID:   snap.NextYearID,
		Name: req.Name,
	}
	snap.NextYearID++
	snap.Years = append(snap.Years, year)

	if err := s.store.Save(snap); err != nil {
		s.logger.Error("saving store failed", zap.Error(err))
		return nil, err
	}

	return &year, nil
}

func (s *yearService) Delete(_ context.Context, id int) error {
	snap, err := s.store.Load()
	if err != nil {
		s.logger.Error("loading store failed", zap.Error(err))
		return err
	}

	// Collect the year's courses, then cascade by course id. The whole
	// cascade lands in one save, so no partial state is ever persisted.
	doomed := make(map[int]bool)
	for _, c := range snap.Courses {
		if c.YearID != nil && *c.YearID == id {
			doomed[c.ID] = true
		}
	}

	years := snap.Years[:0]
	for _, y := range snap.Years {
		if y.ID != id {
			years = append(years, y)
		}
	}
	snap.Years = years

	courses := snap.Courses[:0]
	for _, c := range snap.Courses {
		if !doomed[c.ID] {
			courses = append(courses, c)
		}
	}
	snap.Courses = courses

	groups := snap.AssignmentGroups[:0]
	for _, g := range snap.AssignmentGroups {
		if !doomed[g.CourseID] {
			groups = append(groups, g)
		}
	}
	snap.AssignmentGroups = groups

	assignments := snap.Assignments[:0]
	for _, a := range snap.Assignments {
		if !doomed[a.CourseID] {
			assignments = append(assignments, a)
		}
	}
	snap.Assignments = assignments

	if err := s.store.Save(snap); err != nil {
		s.logger.Error("saving store failed", zap.Error(err))
		return err
	}

	return nil
}
