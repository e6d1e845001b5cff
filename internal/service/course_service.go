package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Keaton-Harvey/DatabasesProject/internal/dto"
	"github.com/Keaton-Harvey/DatabasesProject/internal/model"
	"github.com/Keaton-Harvey/DatabasesProject/internal/repository"
	"github.com/Keaton-Harvey/DatabasesProject/internal/validator"
	pkgerrors "github.com/Keaton-Harvey/DatabasesProject/pkg/errors"
)

// CourseService 课程与课程-学位关联业务接口
type CourseService interface {
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	List(ctx context.Context) ([]dto.CourseResponse, error)
	// LinkDegree 将课程关联到学位，并为课程已有班级补齐该学位目标的占位记录
	LinkDegree(ctx context.Context, req *dto.CreateCourseDegreeRequest) (*dto.CourseDegreeResponse, error)
}

type courseService struct {
	repo        *repository.Repository
	provisioner *Provisioner
	logger      *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, provisioner *Provisioner, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, provisioner: provisioner, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	course := &model.Course{
		CourseNumber: strings.TrimSpace(req.CourseNumber),
		Name:         strings.TrimSpace(req.Name),
	}
	if err := firstError(
		validator.CourseNumber(course.CourseNumber),
		validator.Name("name", course.Name),
	); err != nil {
		return nil, err
	}

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		found, err := exists(tx.Course.GetByNumber(ctx, course.CourseNumber))
		if err != nil {
			return err
		}
		if found {
			return pkgerrors.NewDuplicate("course", model.ConstraintCoursePK)
		}
		return tx.Course.Create(ctx, course)
	})
	if err != nil {
		logFailure(s.logger, "创建课程失败", err, zap.String("course_number", course.CourseNumber))
		return nil, err
	}

	return &dto.CourseResponse{CourseNumber: course.CourseNumber, Name: course.Name}, nil
}

// ────────────────────── List ──────────────────────

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, err
	}
	return toCourseResponses(courses), nil
}

// ────────────────────── LinkDegree ──────────────────────

func (s *courseService) LinkDegree(ctx context.Context, req *dto.CreateCourseDegreeRequest) (*dto.CourseDegreeResponse, error) {
	link := &model.CourseDegree{
		CourseNumber: strings.TrimSpace(req.CourseNumber),
		DegreeID:     strings.TrimSpace(req.DegreeID),
		IsCore:       req.IsCore,
	}
	if err := firstError(
		validator.CourseNumber(link.CourseNumber),
		validator.DegreeID(link.DegreeID),
	); err != nil {
		return nil, err
	}

	var provisioned int64
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if _, err := requireCourse(ctx, tx, link.CourseNumber); err != nil {
			return err
		}
		if _, err := requireDegree(ctx, tx, link.DegreeID); err != nil {
			return err
		}

		found, err := exists(tx.CourseDegree.Get(ctx, link.CourseNumber, link.DegreeID))
		if err != nil {
			return err
		}
		if found {
			return pkgerrors.NewDuplicate("course_degree", model.ConstraintCourseDegreePK)
		}

		if err := tx.CourseDegree.Create(ctx, link); err != nil {
			return err
		}

		sections, err := tx.Section.ListByCourse(ctx, link.CourseNumber)
		if err != nil {
			return err
		}
		provisioned, err = s.provisioner.ProvisionSections(ctx, tx, sections)
		return err
	})
	if err != nil {
		logFailure(s.logger, "关联课程与学位失败", err,
			zap.String("course_number", link.CourseNumber), zap.String("degree_id", link.DegreeID))
		return nil, err
	}

	s.logger.Info("课程已关联学位",
		zap.String("course_number", link.CourseNumber),
		zap.String("degree_id", link.DegreeID),
		zap.Bool("is_core", link.IsCore),
		zap.Int64("provisioned", provisioned),
	)
	return &dto.CourseDegreeResponse{
		CourseNumber:           link.CourseNumber,
		DegreeID:               link.DegreeID,
		IsCore:                 link.IsCore,
		ProvisionedEvaluations: provisioned,
	}, nil
}

func toCourseResponses(courses []model.Course) []dto.CourseResponse {
	result := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		result = append(result, dto.CourseResponse{CourseNumber: c.CourseNumber, Name: c.Name})
	}
	return result
}
