package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/ishaansolanki9/StudyFlow/internal/dto"
	"github.com/ishaansolanki9/StudyFlow/internal/model"
	"github.com/ishaansolanki9/StudyFlow/internal/store"
)

var (
	// ErrAssignmentNotFound is returned when an update targets a
	// missing assignment.
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrScorePair is returned when score and maxScore are not supplied
	// together. A graded assignment always carries both.
	ErrScorePair = errors.New("score and maxScore must be provided together")
)

// AssignmentService manages assignments.
type AssignmentService interface {
	List(ctx context.Context) ([]model.Assignment, error)
	Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*model.Assignment, error)
	Update(ctx context.Context, id int, req *dto.UpdateAssignmentRequest) (*model.Assignment, error)
	// Delete removes a single assignment. Deleting a missing id is a
	// no-op.
	Delete(ctx context.Context, id int) error
}

type assignmentService struct {
	store  store.Store
	logger *zap.Logger
}

// NewAssignmentService creates an AssignmentService instance.
func NewAssignmentService(st store.Store, logger *zap.Logger) AssignmentService {
	return &assignmentService{store: st, logger: logger}
}

func (s *assignmentService) List(_ context.Context) ([]model.Assignment, error) {
	snap, err := s.store.Load()
	if err != nil {
		s.logger.Error("loading store failed", zap.Error(err))
		return nil, err
	}
	return snap.Assignments, nil
}

func (s *assignmentService) Create(_ context.Context, req *dto.CreateAssignmentRequest) (*model.Assignment, error) {
	if (req.Score == nil) != (req.MaxScore == nil) {
		return nil, ErrScorePair
	}

	snap, err := s.store.Load()
	if err != nil {
		s.logger.Error("loading store failed", zap.Error(err))
		return nil, err
	}

	assignment := model.Assignment{
		ID:       snap.NextAssignmentID,
		CourseID: req.CourseID,
		GroupID:  req.GroupID,
		Title:    req.Title,
		DueDate:  req.DueDate,
		Weight:   req.Weight,
		Status:   req.Status,
		Score:    req.Score,
		MaxScore: req.MaxScore,
	}
	if assignment.Status == "" {
		assignment.Status = model.StatusPending
	}
	snap.NextAssignmentID++
	snap.Assignments = append(snap.Assignments, assignment)

	if err := s.store.Save(snap); err != nil {
		s.logger.Error("saving store failed", zap.Error(err))
		return nil, err
	}

	return &assignment, nil
}

func (s *assignmentService) Update(_ context.Context, id int, req *dto.UpdateAssignmentRequest) (*model.Assignment, error) {
	snap, err := s.store.Load()
	if err != nil {
		s.logger.Error("loading store failed", zap.Error(err))
		return nil, err
	}

	idx := -1
	for i := range snap.Assignments {
		if snap.Assignments[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrAssignmentNotFound
	}

	assignment := &snap.Assignments[idx]
	if req.CourseID != nil {
		assignment.CourseID = *req.CourseID
	}
	if req.GroupID != nil {
		assignment.GroupID = req.GroupID
	}
	if req.Title != nil {
		assignment.Title = *req.Title
	}
	if req.DueDate != nil {
		assignment.DueDate = *req.DueDate
	}
	if req.Weight != nil {
		assignment.Weight = *req.Weight
	}
	if req.Status != nil {
		assignment.Status = *req.Status
	}
	if req.Score != nil {
		assignment.Score = req.Score
	}
	if req.MaxScore != nil {
		assignment.MaxScore = req.MaxScore
	}

	// The merged record must still carry score and maxScore as a pair.
	if (assignment.Score == nil) != (assignment.MaxScore == nil) {
		return nil, ErrScorePair
	}

	if err := s.store.Save(snap); err != nil {
		s.logger.Error("saving store failed", zap.Error(err))
		return nil, err
	}

	updated := *assignment
	return &updated, nil
}

func (s *assignmentService) Delete(_ context.Context, id int) error {
	snap, err := s.store.Load()
	if err != nil {
		s.logger.Error("loading store failed", zap.Error(err))
		return err
	}

	assignments := snap.Assignments[:0]
	for _, a := range snap.Assignments {
		if a.ID != id {
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
