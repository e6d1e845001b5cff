package model

import (
	"fmt"
	"strings"
)

// EvaluationKey 评估记录主键：班级 + (degree_id, goal_code)
type EvaluationKey struct {
	SectionKey
	DegreeID string `json:"degree_id"`
	GoalCode string `json:"goal_code"`
}

func (k EvaluationKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.SectionKey, k.DegreeID, k.GoalCode)
}

// Evaluation 班级对学位目标的达成评估，对应 evaluations
// 由班级创建时自动生成全零占位记录，之后反复更新，不删除
type Evaluation struct {
	CourseNumber    string  `gorm:"type:varchar(8);primaryKey"                                   json:"course_number"`
	SectionID       string  `gorm:"type:char(3);primaryKey"                                      json:"section_id"`
	Year            int     `gorm:"primaryKey;autoIncrement:false;index:idx_evaluations_semester" json:"year"`
	Term            Term    `gorm:"type:varchar(6);primaryKey;index:idx_evaluations_semester"    json:"term"`
	DegreeID        string  `gorm:"type:varchar(20);primaryKey"                                  json:"degree_id"`
	GoalCode        string  `gorm:"type:char(4);primaryKey"                                      json:"goal_code"`
	EvaluationType  *string `gorm:"type:varchar(50)"                                             json:"evaluation_type"`
	GradeCountA     int     `gorm:"column:grade_count_a;not null"                                json:"grade_count_a"`
	GradeCountB     int     `gorm:"column:grade_count_b;not null"                                json:"grade_count_b"`
	GradeCountC     int     `gorm:"column:grade_count_c;not null"                                json:"grade_count_c"`
	GradeCountF     int     `gorm:"column:grade_count_f;not null"                                json:"grade_count_f"`
	ImprovementNote *string `gorm:"type:text"                                                    json:"improvement_note"`
	BaseModel
}

// TableName 指定表名
func (Evaluation) TableName() string { return "evaluations" }

// NewPlaceholderEvaluation 生成班级 × 目标的全零占位记录
func NewPlaceholderEvaluation(section SectionKey, degreeID, goalCode string) Evaluation {
	return Evaluation{
		CourseNumber: section.CourseNumber,
		SectionID:    section.SectionID,
		Year:         section.Year,
		Term:         section.Term,
		DegreeID:     degreeID,
		GoalCode:     goalCode,
	}
}

// Key 返回评估主键
func (e *Evaluation) Key() EvaluationKey {
	return EvaluationKey{
		SectionKey: SectionKey{CourseNumber: e.CourseNumber, SectionID: e.SectionID, Year: e.Year, Term: e.Term},
		DegreeID:   e.DegreeID,
		GoalCode:   e.GoalCode,
	}
}

// GradeSum A+B+C+F
func (e *Evaluation) GradeSum() int {
	return e.GradeCountA + e.GradeCountB + e.GradeCountC + e.GradeCountF
}

// PassCount A+B+C
func (e *Evaluation) PassCount() int {
	return e.GradeCountA + e.GradeCountB + e.GradeCountC
}

// HasEvaluationType 评估方式已填写
func (e *Evaluation) HasEvaluationType() bool {
	return e.EvaluationType != nil && strings.TrimSpace(*e.EvaluationType) != ""
}

// HasGrades 成绩分布已填写（人数之和 > 0）
func (e *Evaluation) HasGrades() bool { return e.GradeSum() > 0 }

// HasImprovementNote 改进建议已填写
func (e *Evaluation) HasImprovementNote() bool {
	return e.ImprovementNote != nil && strings.TrimSpace(*e.ImprovementNote) != ""
}

const ConstraintEvaluationPK = "evaluations_pkey"
