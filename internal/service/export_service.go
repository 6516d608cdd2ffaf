package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ishaansolanki9/StudyFlow/internal/dto"
	"github.com/ishaansolanki9/StudyFlow/internal/model"
	"github.com/ishaansolanki9/StudyFlow/internal/store"
)

// ErrExportNoCourses is returned when the scope filter leaves nothing to
// export.
var ErrExportNoCourses = errors.New("no courses in scope")

// ExportService renders the tracked assignments as an Excel workbook.
//
// The workbook carries one sheet per in-scope course; each sheet lists
// the course's assignments with group, due date, weight, status and the
// graded percent where available. The buffer is returned to the handler,
// which sets the download headers.
type ExportService interface {
	ExportAssignments(ctx context.Context, q *dto.ScopeQuery) (*bytes.Buffer, string, error)
}

type exportService struct {
	store  store.Store
	logger *zap.Logger
}

// NewExportService creates an ExportService instance.
func NewExportService(st store.Store, logger *zap.Logger) ExportService {
	return &exportService{store: st, logger: logger}
}

var exportHeader = []string{"Title", "Group", "Due Date", "Weight", "Status", "Score", "Max Score", "Percent"}

func (s *exportService) ExportAssignments(_ context.Context, q *dto.ScopeQuery) (*bytes.Buffer, string, error) {
	snap, err := s.store.Load()
	if err != nil {
		s.logger.Error("loading store failed", zap.Error(err))
		return nil, "", err
	}

	courses, assignments := scope(snap, q)
	if len(courses) == 0 {
		return nil, "", ErrExportNoCourses
	}

	groupNames := make(map[int]string, len(snap.AssignmentGroups))
	for _, g := range snap.AssignmentGroups {
		groupNames[g.ID] = g.Name
	}

	f := excelize.NewFile()
	defer f.Close()

	used := make(map[string]bool)
	for i, course := range courses {
		name := sheetName(course, used)
		if i == 0 {
			// Rename the default sheet instead of leaving it empty.
			if err := f.SetSheetName("Sheet1", name); err != nil {
				s.logger.Error("renaming sheet failed", zap.Error(err))
				return nil, "", err
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				s.logger.Error("adding sheet failed", zap.Error(err))
				return nil, "", err
			}
		}

		for col, h := range exportHeader {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			if err := f.SetCellValue(name, cell, h); err != nil {
				return nil, "", err
			}
		}

		row := 2
		for _, a := range assignments {
			if a.CourseID != course.ID {
				continue
			}
			if err := writeAssignmentRow(f, name, row, &a, groupNames); err != nil {
				s.logger.Error("writing export row failed", zap.Error(err))
				return nil, "", err
			}
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("generating workbook failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("assignments_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

func writeAssignmentRow(f *excelize.File, sheet string, row int, a *model.Assignment, groupNames map[int]string) error {
	group := ""
	if a.GroupID != nil {
		group = groupNames[*a.GroupID]
	}

	values := []interface{}{a.Title, group, a.DueDate, a.Weight, a.Status, nil, nil, nil}
	if a.Score != nil {
		values[5] = *a.Score
	}
	if a.MaxScore != nil {
		values[6] = *a.MaxScore
	}
	if a.Graded() {
		values[7] = *a.Score / *a.MaxScore * 100
	}

	for col, v := range values {
		if v == nil {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// sheetName derives a legal, unique sheet name from the course. Excel
// limits names to 31 characters and forbids []:*?/\ characters.
func sheetName(course model.Course, used map[string]bool) string {
	name := course.Name
	if name == "" {
		name = fmt.Sprintf("Course %d", course.ID)
	}
	name = strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			return ' '
		}
		return r
	}, name)
	if len(name) > 31 {
		name = name[:31]
	}
	base := name
	for n := 2; used[name]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		name = base
		if len(name)+len(suffix) > 31 {
			name = name[:31-len(suffix)]
		}
		name += suffix
	}
	used[name] = true
	return name
}
