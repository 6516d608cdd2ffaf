package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/ishaansolanki9/StudyFlow/internal/dto"
	"github.com/ishaansolanki9/StudyFlow/internal/model"
	"github.com/ishaansolanki9/StudyFlow/internal/store"
)

// ErrCourseNotFound is returned when an update targets a missing course.
var ErrCourseNotFound = errors.New("course not found")

// CourseService manages courses.
type CourseService interface {
	List(ctx context.Context) ([]model.Course, error)
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*model.Course, error)
	Update(ctx context.Context, id int, req *dto.UpdateCourseRequest) (*model.Course, error)
	// Delete removes the course and all of its assignment groups and
	// assignments, grouped or not. Deleting a missing id is a no-op.
	Delete(ctx context.Context, id int) error
}

type courseService struct {
	store  store.Store
	logger *zap.Logger
}

// NewCourseService creates a CourseService instance.
func NewCourseService(st store.Store, logger *zap.Logger) CourseService {
	return &courseService{store: st, logger: logger}
}

func (s *courseService) List(_ context.Context) ([]model.Course, error) {
	snap, err := s.store.Load()
	if err != nil {
		s.logger.Error("loading store failed", zap.Error(err))
		return nil, err
	}
	return snap.Courses, nil
}

func (s *courseService) Create(_ context.Context, req *dto.CreateCourseRequest) (*model.Course, error) {
	snap, err := s.store.Load()
	if err != nil {
		s.logger.Error("loading store failed", zap.Error(err))
		return nil, err
	}

	course := model.Course{
		ID:          snap.NextCourseID,
		Name:        req.Name,
		Code:        req.Code,
		Credits:     req.Credits,
		TargetGrade: req.TargetGrade,
		YearID:      req.YearID,
		Semester:    req.Semester,
	}
	snap.NextCourseID++
	snap.Courses = append(snap.Courses, course)

	if err := s.store.Save(snap); err != nil {
		s.logger.Error("saving store failed", zap.Error(err))
		return nil, err
	}

	return &course, nil
}

func (s *courseService) Update(_ context.Context, id int, req *dto.UpdateCourseRequest) (*model.Course, error) {
	snap, err := s.store.Load()
	if err != nil {
		s.logger.Error("loading store failed", zap.Error(err))
		return nil, err
	}

	idx := -1
	for i := range snap.Courses {
		if snap.Courses[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrCourseNotFound
	}

	course := &snap.Courses[idx]
	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Code != nil {
		course.Code = *req.Code
	}
	if req.Credits != nil {
		course.Credits = *req.Credits
	}
	if req.TargetGrade != nil {
		course.TargetGrade = req.TargetGrade
	}
	if req.YearID != nil {
		course.YearID = req.YearID
	}
	if req.Semester != nil {
		course.Semester = *req.Semester
	}

	if err := s.store.Save(snap); err != nil {
		s.logger.Error("saving store failed", zap.Error(err))
		return nil, err
	}

	updated := *course
	return &updated, nil
}

func (s *courseService) Delete(_ context.Context, id int) error {
	snap, err := s.store.Load()
	if err != nil {
		s.logger.Error("loading store failed", zap.Error(err))
		return err
	}

	courses := snap.Courses[:0]
	for _, c := range snap.Courses {
		if c.ID != id {
			courses = append(courses, c)
		}
	}
	snap.Courses = courses

	groups := snap.AssignmentGroups[:0]
	for _, g := range snap.AssignmentGroups {
		if g.CourseID != id {
			groups = append(groups, g)
		}
	}
	snap.AssignmentGroups = groups

	assignments := snap.Assignments[:0]
	for _, a := range snap.Assignments {
		if a.CourseID != id {
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
