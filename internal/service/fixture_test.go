package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/Keaton-Harvey/DatabasesProject/internal/dto"
	"github.com/Keaton-Harvey/DatabasesProject/internal/model"
)

// ── 测试辅助 ──

var (
	spring2025 = model.SemesterKey{Year: 2025, Term: model.TermSpring}
	cs1010Sec  = model.SectionKey{CourseNumber: "CS1010", SectionID: "001", Year: 2025, Term: model.TermSpring}
)

func strPtr(s string) *string { return &s }

// seedScenario CS1010 同时是 BSCS 与 BACS 的必修课；BSCS 有目标 G001；
// 2025 Spring 学期与教师 12345678 已存在，尚未开设班级
func seedScenario(store *mockStore) {
	store.degrees["BSCS"] = model.Degree{DegreeID: "BSCS", Name: "Computer Science", Level: model.LevelBS}
	store.degrees["BACS"] = model.Degree{DegreeID: "BACS", Name: "Computer Science", Level: model.LevelBA}
	store.courses["CS1010"] = model.Course{CourseNumber: "CS1010", Name: "Intro Programming"}
	store.instructors["12345678"] = model.Instructor{InstructorID: "12345678", Name: "Ada Lovelace"}
	store.goals[goalKey{"BSCS", "G001"}] = model.Goal{DegreeID: "BSCS", GoalCode: "G001", Description: "Communicates effectively"}
	store.semesters[spring2025] = model.Semester{Year: 2025, Term: model.TermSpring}
	store.links[linkKey{"CS1010", "BSCS"}] = model.CourseDegree{CourseNumber: "CS1010", DegreeID: "BSCS", IsCore: true}
	store.links[linkKey{"CS1010", "BACS"}] = model.CourseDegree{CourseNumber: "CS1010", DegreeID: "BACS", IsCore: true}
}

func setupTestService(t *testing.T) (*Service, *mockStore) {
	t.Helper()
	store := newMockStore()
	seedScenario(store)
	repo := newMockRepository(store)
	logger := zap.NewNop()
	provisioner := NewProvisioner(logger)
	svc := &Service{
		Degree:     NewDegreeService(repo, provisioner, logger),
		Course:     NewCourseService(repo, provisioner, logger),
		Instructor: NewInstructorService(repo, logger),
		Semester:   NewSemesterService(repo, logger),
		Section:    NewSectionService(repo, provisioner, logger),
		Evaluation: NewEvaluationService(repo, logger),
		Report:     NewReportService(repo, logger),
		Export:     NewExportService(repo, 70, logger),
	}
	return svc, store
}

// addCS1010Section 开设 CS1010/001/2025/Spring，选课人数 30
func addCS1010Section(t *testing.T, svc *Service) *dto.SectionResponse {
	t.Helper()
	resp, err := svc.Section.Create(context.Background(), &dto.CreateSectionRequest{
		CourseNumber:    "CS1010",
		SectionID:       "001",
		Year:            2025,
		Term:            "Spring",
		InstructorID:    "12345678",
		EnrollmentCount: 30,
	})
	if err != nil {
		t.Fatalf("开设班级应成功: %v", err)
	}
	return resp
}

func bscsG001Key() dto.EvaluationKeyRequest {
	return dto.EvaluationKeyRequest{
		CourseNumber: "CS1010",
		SectionID:    "001",
		Year:         2025,
		Term:         "Spring",
		DegreeID:     "BSCS",
		GoalCode:     "G001",
	}
}

func evalKey(degreeID, goalCode string) model.EvaluationKey {
	return model.EvaluationKey{SectionKey: cs1010Sec, DegreeID: degreeID, GoalCode: goalCode}
}
