package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ishaansolanki9/StudyFlow/internal/model"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "data", "studyflow.json"))
	if err != nil {
		t.Fatalf("NewFileStore should succeed: %v", err)
	}
	return fs
}

func TestFileStore_Load_MissingDocument(t *testing.T) {
	fs := newTestStore(t)

	snap, err := fs.Load()
	if err != nil {
		t.Fatalf("Load should succeed: %v", err)
	}
	if len(snap.Years) != 0 || len(snap.Courses) != 0 || len(snap.AssignmentGroups) != 0 || len(snap.Assignments) != 0 {
		t.Error("missing document should load as empty collections")
	}
	if snap.NextYearID != 1 || snap.NextCourseID != 1 || snap.NextAssignmentID != 1 || snap.NextAssignmentGroupID != 1 {
		t.Error("missing document should load with all counters at 1")
	}

	// The file is only materialized by the first save.
	if _, err := os.Stat(fs.Path()); !os.IsNotExist(err) {
		t.Error("Load should not create the document")
	}
}

func TestFileStore_SaveLoad_Roundtrip(t *testing.T) {
	fs := newTestStore(t)

	yearID := 1
	snap := NewSnapshot()
	snap.Years = append(snap.Years, model.Year{ID: 1, Name: "2026/2027"})
	snap.Courses = append(snap.Courses, model.Course{ID: 1, Name: "Algorithms", Code: "CS301", Credits: 5, YearID: &yearID, Semester: "Fall"})
	snap.NextYearID = 2
	snap.NextCourseID = 2

	if err := fs.Save(snap); err != nil {
		t.Fatalf("Save should succeed: %v", err)
	}

	loaded, err := fs.Load()
	if err != nil {
		t.Fatalf("Load should succeed: %v", err)
	}
	if len(loaded.Years) != 1 || loaded.Years[0].Name != "2026/2027" {
		t.Errorf("unexpected years after roundtrip: %+v", loaded.Years)
	}
	if len(loaded.Courses) != 1 || loaded.Courses[0].Code != "CS301" {
		t.Errorf("unexpected courses after roundtrip: %+v", loaded.Courses)
	}
	if loaded.Courses[0].YearID == nil || *loaded.Courses[0].YearID != 1 {
		t.Error("yearId should survive the roundtrip")
	}
	if loaded.NextYearID != 2 || loaded.NextCourseID != 2 {
		t.Errorf("counters should survive the roundtrip, got %d/%d", loaded.NextYearID, loaded.NextCourseID)
	}
}

func TestFileStore_Save_PrettyPrinted(t *testing.T) {
	fs := newTestStore(t)

	if err := fs.Save(NewSnapshot()); err != nil {
		t.Fatalf("Save should succeed: %v", err)
	}

	raw, err := os.ReadFile(fs.Path())
	if err != nil {
		t.Fatalf("reading document should succeed: %v", err)
	}
	if !strings.Contains(string(raw), "\n  \"years\"") {
		t.Error("document should be pretty-printed (indented)")
	}
	if !json.Valid(raw) {
		t.Error("document should be valid JSON")
	}
}

func TestFileStore_Load_CounterSelfHeal(t *testing.T) {
	// A hand-edited document without counters must heal to max(id)+1.
	fs := newTestStore(t)

	doc := `{
	  "years": [{"id": 3, "name": "old"}, {"id": 7, "name": "new"}],
	  "courses": [{"id": 12, "name": "Calculus"}],
	  "assignments": [{"id": 40, "courseId": 12, "status": "pending"}]
	}`
	if err := os.WriteFile(fs.Path(), []byte(doc), 0o644); err != nil {
		t.Fatalf("seeding document should succeed: %v", err)
	}

	snap, err := fs.Load()
	if err != nil {
		t.Fatalf("Load should succeed: %v", err)
	}
	if snap.NextYearID != 8 {
		t.Errorf("expected nextYearId=8, got %d", snap.NextYearID)
	}
	if snap.NextCourseID != 13 {
		t.Errorf("expected nextCourseId=13, got %d", snap.NextCourseID)
	}
	if snap.NextAssignmentID != 41 {
		t.Errorf("expected nextAssignmentId=41, got %d", snap.NextAssignmentID)
	}
	if snap.NextAssignmentGroupID != 1 {
		t.Errorf("expected nextAssignmentGroupId=1, got %d", snap.NextAssignmentGroupID)
	}
	if snap.AssignmentGroups == nil {
		t.Error("missing collections should load as empty slices")
	}
}

func TestFileStore_Load_Corrupt(t *testing.T) {
	fs := newTestStore(t)

	if err := os.WriteFile(fs.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seeding document should succeed: %v", err)
	}

	if _, err := fs.Load(); err == nil {
		t.Error("corrupt document should fail to load")
	}
}
