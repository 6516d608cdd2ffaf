package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ishaansolanki9/StudyFlow/internal/dto"
)

func TestCourseService_Create_Defaults(t *testing.T) {
	svc, _ := setupServices()

	course, err := svc.Course.Create(context.Background(), &dto.CreateCourseRequest{Name: "Linear Algebra"})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if course.ID != 1 {
		t.Errorf("expected id 1, got %d", course.ID)
	}
	if course.Code != "" || course.Credits != 0 || course.Semester != "" {
		t.Errorf("omitted fields should default to zero values, got %+v", course)
	}
	if course.TargetGrade != nil || course.YearID != nil {
		t.Errorf("omitted nullable fields should stay null, got %+v", course)
	}
}

func TestCourseService_Update_PartialMerge(t *testing.T) {
	svc, _ := setupServices()
	ctx := context.Background()

	target := 85.0
	course, _ := svc.Course.Create(ctx, &dto.CreateCourseRequest{
		Name:        "Databases",
		Code:        "CS305",
		Credits:     5,
		TargetGrade: &target,
		Semester:    "Fall",
	})

	// Only the semester changes; everything else stays untouched.
	semester := "Spring"
	updated, err := svc.Course.Update(ctx, course.ID, &dto.UpdateCourseRequest{Semester: &semester})
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if updated.Semester != "Spring" {
		t.Errorf("expected semester Spring, got %q", updated.Semester)
	}
	if updated.Name != "Databases" || updated.Code != "CS305" || updated.Credits != 5 {
		t.Errorf("untouched fields changed: %+v", updated)
	}
	if updated.TargetGrade == nil || *updated.TargetGrade != 85 {
		t.Errorf("untouched targetGrade changed: %+v", updated.TargetGrade)
	}
}

func TestCourseService_Update_NotFound(t *testing.T) {
	svc, _ := setupServices()

	name := "nope"
	_, err := svc.Course.Update(context.Background(), 42, &dto.UpdateCourseRequest{Name: &name})
	if !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestCourseService_Delete_CascadesGroupsAndAssignments(t *testing.T) {
	svc, st := setupServices()
	ctx := context.Background()

	course, _ := svc.Course.Create(ctx, &dto.CreateCourseRequest{Name: "Networks"})
	group, _ := svc.Group.Create(ctx, &dto.CreateAssignmentGroupRequest{CourseID: course.ID, Name: "Quizzes"})
	// One grouped and one groupless assignment: course deletion removes both.
	svc.Assignment.Create(ctx, &dto.CreateAssignmentRequest{CourseID: course.ID, GroupID: &group.ID, Title: "Quiz 1"})
	svc.Assignment.Create(ctx, &dto.CreateAssignmentRequest{CourseID: course.ID, Title: "Final"})

	other, _ := svc.Course.Create(ctx, &dto.CreateCourseRequest{Name: "Ethics"})
	svc.Assignment.Create(ctx, &dto.CreateAssignmentRequest{CourseID: other.ID, Title: "Essay"})

	if err := svc.Course.Delete(ctx, course.ID); err != nil {
		t.Fatalf("Delete should succeed: %v", err)
	}

	if len(st.snap.Courses) != 1 || st.snap.Courses[0].ID != other.ID {
		t.Errorf("only the other course should survive, got %+v", st.snap.Courses)
	}
	if len(st.snap.AssignmentGroups) != 0 {
		t.Errorf("groups of the deleted course should be gone, got %+v", st.snap.AssignmentGroups)
	}
	if len(st.snap.Assignments) != 1 || st.snap.Assignments[0].Title != "Essay" {
		t.Errorf("grouped and groupless assignments of the deleted course should be gone, got %+v", st.snap.Assignments)
	}
}
