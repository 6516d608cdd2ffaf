package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/ishaansolanki9/StudyFlow/internal/dto"
	"github.com/ishaansolanki9/StudyFlow/internal/model"
	"github.com/ishaansolanki9/StudyFlow/internal/store"
)

// ErrAssignmentGroupNotFound is returned when an update targets a missing
// assignment group.
var ErrAssignmentGroupNotFound = errors.New("assignment group not found")

// AssignmentGroupService manages assignment groups.
type AssignmentGroupService interface {
	List(ctx context.Context) ([]model.AssignmentGroup, error)
	Create(ctx context.Context, req *dto.CreateAssignmentGroupRequest) (*model.AssignmentGroup, error)
	Update(ctx context.Context, id int, req *dto.UpdateAssignmentGroupRequest) (*model.AssignmentGroup, error)
	// Delete removes the group and the assignments referencing it.
	// Assignments of the same course with a different or null groupId
	// survive; this intentionally differs from course deletion, which
	// removes groupless assignments too.
	Delete(ctx context.Context, id int) error
}

type assignmentGroupService struct {
	store  store.Store
	logger *zap.Logger
}

// NewAssignmentGroupService creates an AssignmentGroupService instance.
func NewAssignmentGroupService(st store.Store, logger *zap.Logger) AssignmentGroupService {
	return &assignmentGroupService{store: st, logger: logger}
}

func (s *assignmentGroupService) List(_ context.Context) ([]model.AssignmentGroup, error) {
	snap, err := s.store.Load()
	if err != nil {
		s.logger.Error("loading store failed", zap.Error(err))
		return nil, err
	}
	return snap.AssignmentGroups, nil
}

func (s *assignmentGroupService) Create(_ context.Context, req *dto.CreateAssignmentGroupRequest) (*model.AssignmentGroup, error) {
	snap, err := s.store.Load()
	if err != nil {
		s.logger.Error("loading store failed", zap.Error(err))
		return nil, err
	}

	group := model.AssignmentGroup{
		ID:       snap.NextAssignmentGroupID,
		CourseID: req.CourseID,
		Name:     req.Name,
		Weight:   req.Weight,
		Status:   req.Status,
	}
	if group.Name == "" {
		group.Name = "New Group"
	}
	if group.Status == "" {
		group.Status = model.StatusPending
	}
	snap.NextAssignmentGroupID++
	snap.AssignmentGroups = append(snap.AssignmentGroups, group)

	if err := s.store.Save(snap); err != nil {
		s.logger.Error("saving store failed", zap.Error(err))
		return nil, err
	}

	return &group, nil
}

func (s *assignmentGroupService) Update(_ context.Context, id int, req *dto.UpdateAssignmentGroupRequest) (*model.AssignmentGroup, error) {
	snap, err := s.store.Load()
	if err != nil {
		s.logger.Error("loading store failed", zap.Error(err))
		return nil, err
	}

	idx := -1
	for i := range snap.AssignmentGroups {
		if snap.AssignmentGroups[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrAssignmentGroupNotFound
	}

	group := &snap.AssignmentGroups[idx]
	if req.CourseID != nil {
		group.CourseID = *req.CourseID
	}
	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.Weight != nil {
		group.Weight = *req.Weight
	}
	if req.Status != nil {
		group.Status = *req.Status
	}

	if err := s.store.Save(snap); err != nil {
		s.logger.Error("saving store failed", zap.Error(err))
		return nil, err
	}

	updated := *group
	return &updated, nil
}

func (s *assignmentGroupService) Delete(_ context.Context, id int) error {
	snap, err := s.store.Load()
	if err != nil {
		s.logger.Error("loading store failed", zap.Error(err))
		return err
	}

	groups := snap.AssignmentGroups[:0]
	for _, g := range snap.AssignmentGroups {
		if g.ID != id {
			groups = append(groups, g)
		}
	}
	snap.AssignmentGroups = groups

	assignments := snap.Assignments[:0]
	for _, a := range snap.Assignments {
		if a.GroupID == nil || *a.GroupID != id {
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
