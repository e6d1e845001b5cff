// Package validator 各实体字段的格式/范围/枚举校验。
//
// 所有函数均为无状态纯函数：通过返回 nil，失败返回 *errors.ValidationError。
// 必填字段先做空值（含全空白）检查，再做其他规则检查。
package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Keaton-Harvey/DatabasesProject/internal/model"
	pkgerrors "github.com/Keaton-Harvey/DatabasesProject/pkg/errors"
)

var (
	courseNumberRe = regexp.MustCompile(`^[A-Z]{2,4}\d{4}$`)
	instructorIDRe = regexp.MustCompile(`^\d{8}$`)
	goalCodeRe     = regexp.MustCompile(`^[A-Z]\d{3}$`)
	nameRe         = regexp.MustCompile(`^[A-Za-z ]+$`)
	yearRe         = regexp.MustCompile(`^\d{4}$`)
)

const (
	maxDegreeIDLen       = 20
	maxNameLen           = 100
	maxEvaluationTypeLen = 50
	sectionIDLen         = 3
)

// Required 必填检查：空串或全空白均视为缺失
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return pkgerrors.NewValidation(field, "不能为空")
	}
	return nil
}

// DegreeID 学位编号：必填，不超过 20 个字符，不含空白
func DegreeID(id string) error {
	if err := Required("degree_id", id); err != nil {
		return err
	}
	if utf8.RuneCountInString(id) > maxDegreeIDLen {
		return pkgerrors.NewValidation("degree_id", "长度不能超过 20 个字符")
	}
	if strings.ContainsAny(id, " \t\r\n") {
		return pkgerrors.NewValidation("degree_id", "不能包含空白字符")
	}
	return nil
}

// DegreeLevel 学位层次必须为 BA/BS/MS/Ph.D./Cert 之一
func DegreeLevel(level string) error {
	if err := Required("level", level); err != nil {
		return err
	}
	for _, l := range model.DegreeLevels {
		if string(l) == level {
			return nil
		}
	}
	return pkgerrors.NewValidation("level", "必须为 BA、BS、MS、Ph.D.、Cert 之一")
}

// Name 学位/课程名称：只能包含字母与空格
func Name(field, name string) error {
	if err := Required(field, name); err != nil {
		return err
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return pkgerrors.NewValidation(field, "长度不能超过 100 个字符")
	}
	if !nameRe.MatchString(name) {
		return pkgerrors.NewValidation(field, "只能包含字母和空格")
	}
	return nil
}

// PersonName 教师姓名：必填且不超过 100 个字符
func PersonName(name string) error {
	if err := Required("name", name); err != nil {
		return err
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return pkgerrors.NewValidation("name", "长度不能超过 100 个字符")
	}
	return nil
}

// CourseNumber 课程编号：2-4 个大写字母 + 4 位数字，如 CS1010
func CourseNumber(number string) error {
	if err := Required("course_number", number); err != nil {
		return err
	}
	if !courseNumberRe.MatchString(number) {
		return pkgerrors.NewValidation("course_number", "必须为 2-4 个大写字母加 4 位数字")
	}
	return nil
}

// InstructorID 教师编号：恰好 8 位数字
func InstructorID(id string) error {
	if err := Required("instructor_id", id); err != nil {
		return err
	}
	if !instructorIDRe.MatchString(id) {
		return pkgerrors.NewValidation("instructor_id", "必须为 8 位数字")
	}
	return nil
}

// GoalCode 目标编号：1 个大写字母 + 3 位数字，如 G001
// 早期任意 4 字符的格式不再接受
func GoalCode(code string) error {
	if err := Required("goal_code", code); err != nil {
		return err
	}
	if !goalCodeRe.MatchString(code) {
		return pkgerrors.NewValidation("goal_code", "必须为 1 个大写字母加 3 位数字")
	}
	return nil
}

// Description 目标描述：必填
func Description(desc string) error {
	return Required("description", desc)
}

// Year 年份：4 位数字
func Year(year int) error {
	if year < 1000 || year > 9999 {
		return pkgerrors.NewValidation("year", "必须为 4 位数字")
	}
	return nil
}

// YearString 字符串形式的年份（命令行、查询参数）
func YearString(year string) error {
	if err := Required("year", year); err != nil {
		return err
	}
	if !yearRe.MatchString(year) || year[0] == '0' {
		return pkgerrors.NewValidation("year", "必须为 4 位数字")
	}
	return nil
}

// Term 学期季节：Spring/Summer/Fall
func Term(term string) error {
	if err := Required("term", term); err != nil {
		return err
	}
	if !model.Term(term).Valid() {
		return pkgerrors.NewValidation("term", "必须为 Spring、Summer、Fall 之一")
	}
	return nil
}

// Semester 年份 + 季节
func Semester(year int, term string) error {
	if err := Year(year); err != nil {
		return err
	}
	return Term(term)
}

// SectionID 班级编号：恰好 3 个字符
func SectionID(id string) error {
	if err := Required("section_id", id); err != nil {
		return err
	}
	if utf8.RuneCountInString(id) != sectionIDLen {
		return pkgerrors.NewValidation("section_id", "必须恰好为 3 个字符")
	}
	return nil
}

// EnrollmentCount 选课人数：非负整数
func EnrollmentCount(count int) error {
	if count < 0 {
		return pkgerrors.NewValidation("enrollment_count", "不能为负数")
	}
	return nil
}

// GradeCounts A/B/C/F 人数均为非负整数
func GradeCounts(a, b, c, f int) error {
	counts := []struct {
		field string
		value int
	}{
		{"grade_count_a", a},
		{"grade_count_b", b},
		{"grade_count_c", c},
		{"grade_count_f", f},
	}
	for _, gc := range counts {
		if gc.value < 0 {
			return pkgerrors.NewValidation(gc.field, "不能为负数")
		}
	}
	return nil
}

// EvaluationType 评估方式可为空；填写时不超过 50 个字符
func EvaluationType(evalType string) error {
	if utf8.RuneCountInString(strings.TrimSpace(evalType)) > maxEvaluationTypeLen {
		return pkgerrors.NewValidation("evaluation_type", "长度不能超过 50 个字符")
	}
	return nil
}

// PassThreshold 通过率阈值：0-100
func PassThreshold(threshold float64) error {
	if threshold < 0 || threshold > 100 {
		return pkgerrors.NewValidation("threshold", "必须在 0-100 之间")
	}
	return nil
}
