package validator

import (
	"errors"
	"testing"

	pkgerrors "github.com/Keaton-Harvey/DatabasesProject/pkg/errors"
)

func assertValid(t *testing.T, name string, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: 期望通过，实际: %v", name, err)
	}
}

func assertInvalid(t *testing.T, name, field string, err error) {
	t.Helper()
	if !errors.Is(err, pkgerrors.ErrValidation) {
		t.Errorf("%s: 期望 ErrValidation，实际: %v", name, err)
		return
	}
	var ve *pkgerrors.ValidationError
	if errors.As(err, &ve) && ve.Field != field {
		t.Errorf("%s: 期望字段 %s，实际 %s", name, field, ve.Field)
	}
}

func TestCourseNumber(t *testing.T) {
	for _, ok := range []string{"CS1010", "MATH2410", "EE0001"} {
		assertValid(t, ok, CourseNumber(ok))
	}
	for _, bad := range []string{"", "   ", "C1010", "MATHS1010", "cs1010", "CS101", "CS10100", "CS 1010"} {
		assertInvalid(t, bad, "course_number", CourseNumber(bad))
	}
}

func TestInstructorID(t *testing.T) {
	assertValid(t, "12345678", InstructorID("12345678"))
	for _, bad := range []string{"", "1234567", "123456789", "1234567a", "        "} {
		assertInvalid(t, bad, "instructor_id", InstructorID(bad))
	}
}

func TestGoalCode(t *testing.T) {
	assertValid(t, "G001", GoalCode("G001"))
	// 宽松的任意 4 字符格式不再接受
	for _, bad := range []string{"", "GOAL", "g001", "G01", "G0001", "1001"} {
		assertInvalid(t, bad, "goal_code", GoalCode(bad))
	}
}

func TestDegreeLevel(t *testing.T) {
	for _, ok := range []string{"BA", "BS", "MS", "Ph.D.", "Cert"} {
		assertValid(t, ok, DegreeLevel(ok))
	}
	for _, bad := range []string{"", "PhD", "bs", "MBA"} {
		assertInvalid(t, bad, "level", DegreeLevel(bad))
	}
}

func TestName(t *testing.T) {
	assertValid(t, "Computer Science", Name("name", "Computer Science"))
	assertInvalid(t, "数字", "name", Name("name", "CS 101"))
	assertInvalid(t, "空白", "name", Name("name", "  "))
	assertInvalid(t, "符号", "name", Name("name", "Data-Science"))
}

func TestDegreeID(t *testing.T) {
	assertValid(t, "BSCS", DegreeID("BSCS"))
	assertInvalid(t, "空", "degree_id", DegreeID(""))
	assertInvalid(t, "空格", "degree_id", DegreeID("BS CS"))
	assertInvalid(t, "过长", "degree_id", DegreeID("ABCDEFGHIJKLMNOPQRSTU"))
}

func TestSemesterFields(t *testing.T) {
	assertValid(t, "2025 Spring", Semester(2025, "Spring"))
	assertInvalid(t, "3 位年份", "year", Semester(999, "Spring"))
	assertInvalid(t, "5 位年份", "year", Semester(10000, "Fall"))
	assertInvalid(t, "Winter", "term", Semester(2025, "Winter"))
	assertInvalid(t, "小写", "term", Term("spring"))

	assertValid(t, "2025", YearString("2025"))
	assertInvalid(t, "0999", "year", YearString("0999"))
	assertInvalid(t, "20a5", "year", YearString("20a5"))
}

func TestSectionID(t *testing.T) {
	assertValid(t, "001", SectionID("001"))
	assertValid(t, "A01", SectionID("A01"))
	for _, bad := range []string{"", "01", "0001", "   "} {
		assertInvalid(t, bad, "section_id", SectionID(bad))
	}
}

func TestCounts(t *testing.T) {
	assertValid(t, "0", EnrollmentCount(0))
	assertInvalid(t, "-1", "enrollment_count", EnrollmentCount(-1))

	assertValid(t, "全零", GradeCounts(0, 0, 0, 0))
	assertInvalid(t, "C 为负", "grade_count_c", GradeCounts(1, 2, -3, 4))
}

func TestPassThreshold(t *testing.T) {
	assertValid(t, "0", PassThreshold(0))
	assertValid(t, "100", PassThreshold(100))
	assertInvalid(t, "-1", "threshold", PassThreshold(-1))
	assertInvalid(t, "101", "threshold", PassThreshold(101))
}
