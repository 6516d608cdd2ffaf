package service

import (
	"context"
	"testing"
	"time"

	"github.com/ishaansolanki9/StudyFlow/internal/dto"
	"github.com/ishaansolanki9/StudyFlow/internal/model"
)

func dateFromNow(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func ptrFloat(f float64) *float64 { return &f }
func ptrInt(i int) *int           { return &i }

func TestDashboardService_Workload_PendingCounts(t *testing.T) {
	svc, st := setupServices()

	st.snap.Courses = []model.Course{{ID: 1, Name: "Algorithms"}, {ID: 2, Name: "History"}}
	st.snap.Assignments = []model.Assignment{
		{ID: 1, CourseID: 1, Status: model.StatusDone},
		{ID: 2, CourseID: 1, Status: model.StatusPending},
		{ID: 3, CourseID: 1, Status: model.StatusDone},
	}

	dashboard, err := svc.Dashboard.Overview(context.Background(), &dto.ScopeQuery{})
	if err != nil {
		t.Fatalf("Overview should succeed: %v", err)
	}

	// One entry per course in original order, zero counts included.
	if len(dashboard.WorkloadByCourse) != 2 {
		t.Fatalf("expected 2 workload entries, got %+v", dashboard.WorkloadByCourse)
	}
	if w := dashboard.WorkloadByCourse[0]; w.CourseID != 1 || w.CourseName != "Algorithms" || w.PendingCount != 1 {
		t.Errorf("unexpected workload for course 1: %+v", w)
	}
	if w := dashboard.WorkloadByCourse[1]; w.CourseID != 2 || w.PendingCount != 0 {
		t.Errorf("course without assignments should report 0 pending: %+v", w)
	}
}

func TestDashboardService_Upcoming_FilterSortLimit(t *testing.T) {
	svc, st := setupServices()

	st.snap.Courses = []model.Course{{ID: 1, Name: "Algorithms"}}
	st.snap.Assignments = []model.Assignment{
		{ID: 1, CourseID: 1, Title: "past", DueDate: dateFromNow(-1), Status: model.StatusPending},
		{ID: 2, CourseID: 1, Title: "later", DueDate: dateFromNow(5), Status: model.StatusPending},
		{ID: 3, CourseID: 1, Title: "today", DueDate: dateFromNow(0), Status: model.StatusPending},
		{ID: 4, CourseID: 1, Title: "undated", DueDate: "", Status: model.StatusPending},
	}

	dashboard, err := svc.Dashboard.Overview(context.Background(), &dto.ScopeQuery{})
	if err != nil {
		t.Fatalf("Overview should succeed: %v", err)
	}

	if len(dashboard.Upcoming) != 2 {
		t.Fatalf("yesterday and undated must be excluded, got %+v", dashboard.Upcoming)
	}
	if dashboard.Upcoming[0].Title != "today" || dashboard.Upcoming[1].Title != "later" {
		t.Errorf("upcoming should be ascending by due date, got %q then %q",
			dashboard.Upcoming[0].Title, dashboard.Upcoming[1].Title)
	}
	if dashboard.Upcoming[0].Course == nil || dashboard.Upcoming[0].Course.Name != "Algorithms" {
		t.Errorf("upcoming entries should carry their course, got %+v", dashboard.Upcoming[0].Course)
	}
}

func TestDashboardService_Upcoming_CapsAtTen(t *testing.T) {
	svc, st := setupServices()

	st.snap.Courses = []model.Course{{ID: 1, Name: "Algorithms"}}
	for i := 1; i <= 14; i++ {
		st.snap.Assignments = append(st.snap.Assignments, model.Assignment{
			ID: i, CourseID: 1, DueDate: dateFromNow(i), Status: model.StatusPending,
		})
	}

	dashboard, err := svc.Dashboard.Overview(context.Background(), &dto.ScopeQuery{})
	if err != nil {
		t.Fatalf("Overview should succeed: %v", err)
	}
	if len(dashboard.Upcoming) != 10 {
		t.Fatalf("expected exactly 10 upcoming entries, got %d", len(dashboard.Upcoming))
	}
	// Nearest first.
	if dashboard.Upcoming[0].ID != 1 || dashboard.Upcoming[9].ID != 10 {
		t.Errorf("expected the 10 nearest assignments, got first=%d last=%d",
			dashboard.Upcoming[0].ID, dashboard.Upcoming[9].ID)
	}
}

func TestDashboardService_ProjectedGPA_WeightedPercent(t *testing.T) {
	svc, st := setupServices()

	// (0.9*50 + 0.7*50) / 100 * 100 = 80 percent ⇒ 3.0.
	st.snap.Courses = []model.Course{{ID: 1, Name: "Algorithms"}}
	st.snap.Assignments = []model.Assignment{
		{ID: 1, CourseID: 1, Weight: 50, Score: ptrFloat(90), MaxScore: ptrFloat(100), Status: model.StatusDone},
		{ID: 2, CourseID: 1, Weight: 50, Score: ptrFloat(70), MaxScore: ptrFloat(100), Status: model.StatusDone},
	}

	dashboard, err := svc.Dashboard.Overview(context.Background(), &dto.ScopeQuery{})
	if err != nil {
		t.Fatalf("Overview should succeed: %v", err)
	}
	if dashboard.ProjectedGPA == nil {
		t.Fatal("projected GPA should be present")
	}
	if *dashboard.ProjectedGPA != 3.0 {
		t.Errorf("expected projected GPA 3.0, got %v", *dashboard.ProjectedGPA)
	}
}

func TestDashboardService_ProjectedGPA_AbsentWithoutGrades(t *testing.T) {
	svc, st := setupServices()

	st.snap.Courses = []model.Course{{ID: 1, Name: "Algorithms"}}
	st.snap.Assignments = []model.Assignment{
		// Ungraded and zero-weight graded work contributes nothing.
		{ID: 1, CourseID: 1, Weight: 40, Status: model.StatusPending},
		{ID: 2, CourseID: 1, Weight: 0, Score: ptrFloat(10), MaxScore: ptrFloat(10), Status: model.StatusDone},
	}

	dashboard, err := svc.Dashboard.Overview(context.Background(), &dto.ScopeQuery{})
	if err != nil {
		t.Fatalf("Overview should succeed: %v", err)
	}
	if dashboard.ProjectedGPA != nil {
		t.Errorf("projected GPA should be absent, not %v", *dashboard.ProjectedGPA)
	}
}

func TestDashboardService_ProjectedGPA_AveragesOnlyGradedCourses(t *testing.T) {
	svc, st := setupServices()

	st.snap.Courses = []model.Course{
		{ID: 1, Name: "Algorithms"}, // 95% ⇒ 4.0
		{ID: 2, Name: "History"},    // 65% ⇒ 1.0
		{ID: 3, Name: "Drawing"},    // no graded work ⇒ excluded
	}
	st.snap.Assignments = []model.Assignment{
		{ID: 1, CourseID: 1, Weight: 10, Score: ptrFloat(95), MaxScore: ptrFloat(100), Status: model.StatusDone},
		{ID: 2, CourseID: 2, Weight: 10, Score: ptrFloat(65), MaxScore: ptrFloat(100), Status: model.StatusDone},
		{ID: 3, CourseID: 3, Weight: 10, Status: model.StatusPending},
	}

	dashboard, err := svc.Dashboard.Overview(context.Background(), &dto.ScopeQuery{})
	if err != nil {
		t.Fatalf("Overview should succeed: %v", err)
	}
	if dashboard.ProjectedGPA == nil {
		t.Fatal("projected GPA should be present")
	}
	if *dashboard.ProjectedGPA != 2.5 {
		t.Errorf("expected (4.0+1.0)/2 = 2.5, got %v", *dashboard.ProjectedGPA)
	}
}

func TestDashboardService_ScopeFilters(t *testing.T) {
	svc, st := setupServices()

	st.snap.Courses = []model.Course{
		{ID: 1, Name: "Fall course", YearID: ptrInt(1), Semester: "Fall"},
		{ID: 2, Name: "Spring course", YearID: ptrInt(1), Semester: "Spring"},
		{ID: 3, Name: "Other year", YearID: ptrInt(2), Semester: "Fall"},
		{ID: 4, Name: "Unattached"},
	}
	st.snap.Assignments = []model.Assignment{
		{ID: 1, CourseID: 1, Weight: 10, Status: model.StatusPending},
		{ID: 2, CourseID: 2, Weight: 20, Status: model.StatusPending},
		{ID: 3, CourseID: 3, Weight: 30, Status: model.StatusPending},
		{ID: 4, CourseID: 4, Weight: 40, Status: model.StatusPending},
	}

	dashboard, err := svc.Dashboard.Overview(context.Background(), &dto.ScopeQuery{Year: ptrInt(1), Semester: "Fall"})
	if err != nil {
		t.Fatalf("Overview should succeed: %v", err)
	}
	if len(dashboard.WorkloadByCourse) != 1 || dashboard.WorkloadByCourse[0].CourseID != 1 {
		t.Errorf("expected only the year-1 Fall course in scope, got %+v", dashboard.WorkloadByCourse)
	}

	summary, err := svc.Dashboard.Summary(context.Background(), &dto.ScopeQuery{Year: ptrInt(1)})
	if err != nil {
		t.Fatalf("Summary should succeed: %v", err)
	}
	if summary.TotalCourses != 2 || summary.TotalAssignments != 2 {
		t.Errorf("expected 2 courses / 2 assignments in year 1, got %+v", summary)
	}
	if summary.TotalWeight != 30 {
		t.Errorf("expected total weight 30, got %v", summary.TotalWeight)
	}
}

func TestDashboardService_Summary_Totals(t *testing.T) {
	svc, st := setupServices()

	st.snap.Courses = []model.Course{{ID: 1, Name: "Algorithms"}}
	st.snap.Assignments = []model.Assignment{
		{ID: 1, CourseID: 1, Weight: 30, Status: model.StatusDone},
		{ID: 2, CourseID: 1, Weight: 20, Status: model.StatusPending},
		{ID: 3, CourseID: 1, Weight: 50, Status: model.StatusDone},
	}

	summary, err := svc.Dashboard.Summary(context.Background(), &dto.ScopeQuery{})
	if err != nil {
		t.Fatalf("Summary should succeed: %v", err)
	}
	if summary.TotalCourses != 1 || summary.TotalAssignments != 3 {
		t.Errorf("unexpected totals: %+v", summary)
	}
	if summary.TotalWeight != 100 {
		t.Errorf("expected total weight 100, got %v", summary.TotalWeight)
	}
	if summary.CompletedWeight != 80 {
		t.Errorf("expected completed weight 80, got %v", summary.CompletedWeight)
	}
}

func TestPercentToGPA_Thresholds(t *testing.T) {
	cases := []struct {
		percent float64
		want    float64
	}{
		{100, 4.0}, {90, 4.0}, {89.9, 3.0}, {80, 3.0},
		{79.9, 2.0}, {70, 2.0}, {69.9, 1.0}, {60, 1.0},
		{59.9, 0.0}, {0, 0.0},
	}
	for _, c := range cases {
		if got := percentToGPA(c.percent); got != c.want {
			t.Errorf("percentToGPA(%v) = %v, want %v", c.percent, got, c.want)
		}
	}
}
