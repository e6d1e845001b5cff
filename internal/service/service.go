package service

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Keaton-Harvey/DatabasesProject/config"
	"github.com/Keaton-Harvey/DatabasesProject/internal/repository"
	pkgerrors "github.com/Keaton-Harvey/DatabasesProject/pkg/errors"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Degree     DegreeService
	Course     CourseService
	Instructor InstructorService
	Semester   SemesterService
	Section    SectionService
	Evaluation EvaluationService
	Report     ReportService
	Export     ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	logger *zap.Logger,
) *Service {
	provisioner := NewProvisioner(logger)
	report := NewReportService(repo, logger)
	return &Service{
		Degree:     NewDegreeService(repo, provisioner, logger),
		Course:     NewCourseService(repo, provisioner, logger),
		Instructor: NewInstructorService(repo, logger),
		Semester:   NewSemesterService(repo, logger),
		Section:    NewSectionService(repo, provisioner, logger),
		Evaluation: NewEvaluationService(repo, logger),
		Report:     report,
		Export:     NewExportService(repo, cfg.Assessment.DefaultPassThreshold, logger),
	}
}

// ── 公共辅助 ──

// isNotFound 存储层查询无结果
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isBusinessError 校验/引用/重复/一致性错误由调用方展示给用户，不属于系统故障
func isBusinessError(err error) bool {
	return errors.Is(err, pkgerrors.ErrValidation) ||
		errors.Is(err, pkgerrors.ErrReference) ||
		errors.Is(err, pkgerrors.ErrDuplicate) ||
		errors.Is(err, pkgerrors.ErrConsistency)
}

// logFailure 仅对系统故障记 Error 日志
func logFailure(logger *zap.Logger, msg string, err error, fields ...zap.Field) {
	if err == nil || isBusinessError(err) {
		return
	}
	logger.Error(msg, append(fields, zap.Error(err))...)
}

// firstError 返回第一个非 nil 错误（按顺序执行的字段校验）
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
