package handler

import (
	"github.com/Keaton-Harvey/DatabasesProject/config"
	"github.com/Keaton-Harvey/DatabasesProject/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Degree     *DegreeHandler
	Course     *CourseHandler
	Instructor *InstructorHandler
	Semester   *SemesterHandler
	Section    *SectionHandler
	Evaluation *EvaluationHandler
	Report     *ReportHandler
	Export     *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service, assessment config.AssessmentConfig) *Handler {
	return &Handler{
		Degree:     NewDegreeHandler(svc.Degree, svc.Report),
		Course:     NewCourseHandler(svc.Course, svc.Report),
		Instructor: NewInstructorHandler(svc.Instructor),
		Semester:   NewSemesterHandler(svc.Semester, svc.Section, svc.Report),
		Section:    NewSectionHandler(svc.Section, svc.Evaluation),
		Evaluation: NewEvaluationHandler(svc.Evaluation),
		Report:     NewReportHandler(svc.Report, assessment.DefaultPassThreshold),
		Export:     NewExportHandler(svc.Export),
	}
}
