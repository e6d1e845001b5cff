package service

import (
	"sort"

	"github.com/Keaton-Harvey/DatabasesProject/internal/dto"
	"github.com/Keaton-Harvey/DatabasesProject/internal/model"
)

// EvaluationStatus 评估录入状态（展示给用户的固定文案）
type EvaluationStatus string

const (
	StatusNotEntered      EvaluationStatus = "No Evaluation Entered"
	StatusPartial         EvaluationStatus = "Partially Entered"
	StatusFullWithoutNote EvaluationStatus = "Fully Entered (No Improvement Note)"
	StatusFullWithNote    EvaluationStatus = "Fully Entered (With Improvement Note)"
)

// ClassifyStatus 根据三个填写标记得出录入状态
//   - 评估方式与成绩都未填写：未录入
//   - 只填写其中之一：部分录入
//   - 两者都已填写：完整录入，再按是否有改进建议区分
//
// 仅填写改进建议不改变状态
func ClassifyStatus(hasEvaluation, hasGrades, hasImprovement bool) EvaluationStatus {
	switch {
	case hasEvaluation && hasGrades && hasImprovement:
		return StatusFullWithNote
	case hasEvaluation && hasGrades:
		return StatusFullWithoutNote
	case hasEvaluation || hasGrades:
		return StatusPartial
	default:
		return StatusNotEntered
	}
}

// statusFlags 多条评估记录合并后的填写标记：任一记录已填写即视为已填写
type statusFlags struct {
	hasEvaluation  bool
	hasGrades      bool
	hasImprovement bool
}

func (f *statusFlags) add(e *model.Evaluation) {
	f.hasEvaluation = f.hasEvaluation || e.HasEvaluationType()
	f.hasGrades = f.hasGrades || e.HasGrades()
	f.hasImprovement = f.hasImprovement || e.HasImprovementNote()
}

func (f statusFlags) status() EvaluationStatus {
	return ClassifyStatus(f.hasEvaluation, f.hasGrades, f.hasImprovement)
}

// evaluationStatus 单条评估记录的状态
func evaluationStatus(e *model.Evaluation) EvaluationStatus {
	var f statusFlags
	f.add(e)
	return f.status()
}

// buildSectionStatus 汇总班级状态；evaluations 须属于该班级
func buildSectionStatus(section *model.Section, evaluations []model.Evaluation) dto.SectionStatusResponse {
	var flags statusFlags
	goals := make([]dto.GoalStatusResponse, 0, len(evaluations))
	for i := range evaluations {
		e := &evaluations[i]
		flags.add(e)
		goals = append(goals, dto.GoalStatusResponse{
			DegreeID: e.DegreeID,
			GoalCode: e.GoalCode,
			Status:   string(evaluationStatus(e)),
		})
	}
	sort.Slice(goals, func(i, j int) bool {
		if goals[i].DegreeID != goals[j].DegreeID {
			return goals[i].DegreeID < goals[j].DegreeID
		}
		return goals[i].GoalCode < goals[j].GoalCode
	})

	return dto.SectionStatusResponse{
		CourseNumber:    section.CourseNumber,
		SectionID:       section.SectionID,
		Year:            section.Year,
		Term:            string(section.Term),
		InstructorID:    section.InstructorID,
		EnrollmentCount: section.EnrollmentCount,
		Status:          string(flags.status()),
		Goals:           goals,
	}
}

// buildSemesterStatus 按班级分组评估记录并逐班汇总，结果按 (课程, 班级) 排序。
// 没有任何评估记录的班级状态为未录入
func buildSemesterStatus(sections []model.Section, evaluations []model.Evaluation) []dto.SectionStatusResponse {
	bySection := make(map[model.SectionKey][]model.Evaluation, len(sections))
	for _, e := range evaluations {
		key := e.Key().SectionKey
		bySection[key] = append(bySection[key], e)
	}

	result := make([]dto.SectionStatusResponse, 0, len(sections))
	for i := range sections {
		result = append(result, buildSectionStatus(&sections[i], bySection[sections[i].Key()]))
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CourseNumber != result[j].CourseNumber {
			return result[i].CourseNumber < result[j].CourseNumber
		}
		return result[i].SectionID < result[j].SectionID
	})
	return result
}
