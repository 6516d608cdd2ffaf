package store

import "github.com/ishaansolanki9/StudyFlow/internal/model"

// Snapshot is the entire persisted state: the four collections plus the
// per-collection id counters. Ids are handed out from the counters and
// never reused, including after deletion.
type Snapshot struct {
	Years            []model.Year            `json:"years"`
	Courses          []model.Course          `json:"courses"`
	AssignmentGroups []model.AssignmentGroup `json:"assignmentGroups"`
	Assignments      []model.Assignment      `json:"assignments"`

	NextYearID            int `json:"nextYearId"`
	NextCourseID          int `json:"nextCourseId"`
	NextAssignmentID      int `json:"nextAssignmentId"`
	NextAssignmentGroupID int `json:"nextAssignmentGroupId"`
}

// NewSnapshot returns an empty snapshot with all counters at 1.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Years:                 []model.Year{},
		Courses:               []model.Course{},
		AssignmentGroups:      []model.AssignmentGroup{},
		Assignments:           []model.Assignment{},
		NextYearID:            1,
		NextCourseID:          1,
		NextAssignmentID:      1,
		NextAssignmentGroupID: 1,
	}
}

// Normalize repairs a snapshot loaded from an external document: nil
// collections become empty slices and missing counters self-heal to
// max(id)+1, so a hand-edited file without counters stays safe.
func (s *Snapshot) Normalize() {
	if s.Years == nil {
		s.Years = []model.Year{}
	}
	if s.Courses == nil {
		s.Courses = []model.Course{}
	}
	if s.AssignmentGroups == nil {
		s.AssignmentGroups = []model.AssignmentGroup{}
	}
	if s.Assignments == nil {
		s.Assignments = []model.Assignment{}
	}

	if s.NextYearID <= 0 {
		max := 0
		for _, y := range s.Years {
			if y.ID > max {
				max = y.ID
			}
		}
		s.NextYearID = max + 1
	}
	if s.NextCourseID <= 0 {
		max := 0
		for _, c := range s.Courses {
			if c.ID > max {
				max = c.ID
			}
		}
		s.NextCourseID = max + 1
	}
	if s.NextAssignmentID <= 0 {
		max := 0
		for _, a := range s.Assignments {
			if a.ID > max {
				max = a.ID
			}
		}
		s.NextAssignmentID = max + 1
	}
	if s.NextAssignmentGroupID <= 0 {
		max := 0
		for _, g := range s.AssignmentGroups {
			if g.ID > max {
				max = g.ID
			}
		}
		s.NextAssignmentGroupID = max + 1
	}
}

// Store loads and persists the snapshot. Every mutation is a full
// load → modify → save cycle; there is no caching between calls and no
// isolation between concurrent cycles (single-user assumption).
type Store interface {
	Load() (*Snapshot, error)
	Save(*Snapshot) error
}
