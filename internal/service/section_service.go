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

// SectionService 课程班级业务接口
type SectionService interface {
	// Create 开设班级，并在同一事务内生成全部评估占位记录
	Create(ctx context.Context, req *dto.CreateSectionRequest) (*dto.SectionResponse, error)
	ListBySemester(ctx context.Context, year int, term string) ([]dto.SectionResponse, error)
}

type sectionService struct {
	repo        *repository.Repository
	provisioner *Provisioner
	logger      *zap.Logger
}

// NewSectionService 创建 SectionService 实例
func NewSectionService(repo *repository.Repository, provisioner *Provisioner, logger *zap.Logger) SectionService {
	return &sectionService{repo: repo, provisioner: provisioner, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *sectionService) Create(ctx context.Context, req *dto.CreateSectionRequest) (*dto.SectionResponse, error) {
	section := &model.Section{
		CourseNumber:    strings.TrimSpace(req.CourseNumber),
		SectionID:       strings.TrimSpace(req.SectionID),
		Year:            req.Year,
		Term:            model.Term(strings.TrimSpace(req.Term)),
		InstructorID:    strings.TrimSpace(req.InstructorID),
		EnrollmentCount: req.EnrollmentCount,
	}
	if err := firstError(
		validator.CourseNumber(section.CourseNumber),
		validator.SectionID(section.SectionID),
		validator.Semester(section.Year, string(section.Term)),
		validator.InstructorID(section.InstructorID),
		validator.EnrollmentCount(section.EnrollmentCount),
	); err != nil {
		return nil, err
	}

	key := section.Key()
	var provisioned int64
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if _, err := requireCourse(ctx, tx, section.CourseNumber); err != nil {
			return err
		}
		if _, err := requireInstructor(ctx, tx, section.InstructorID); err != nil {
			return err
		}
		if _, err := requireSemester(ctx, tx, key.Semester()); err != nil {
			return err
		}

		found, err := exists(tx.Section.Get(ctx, key))
		if err != nil {
			return err
		}
		if found {
			return pkgerrors.NewDuplicate("section", model.ConstraintSectionPK)
		}

		if err := tx.Section.Create(ctx, section); err != nil {
			return err
		}

		// 占位记录生成失败时班级一并回滚
		provisioned, err = s.provisioner.ProvisionSection(ctx, tx, key)
		return err
	})
	if err != nil {
		logFailure(s.logger, "开设班级失败", err, zap.Stringer("section", key))
		return nil, err
	}

	s.logger.Info("班级已开设",
		zap.Stringer("section", key),
		zap.String("instructor_id", section.InstructorID),
		zap.Int64("provisioned", provisioned),
	)
	resp := toSectionResponse(section)
	resp.ProvisionedEvaluations = provisioned
	return &resp, nil
}

// ────────────────────── ListBySemester ──────────────────────

func (s *sectionService) ListBySemester(ctx context.Context, year int, term string) ([]dto.SectionResponse, error) {
	if err := validator.Semester(year, term); err != nil {
		return nil, err
	}
	sections, err := s.repo.Section.ListBySemester(ctx, model.SemesterKey{Year: year, Term: model.Term(term)})
	if err != nil {
		s.logger.Error("列出学期班级失败", zap.Int("year", year), zap.String("term", term), zap.Error(err))
		return nil, err
	}
	return toSectionResponses(sections), nil
}

// ── 转换 ──

func toSectionResponse(sec *model.Section) dto.SectionResponse {
	return dto.SectionResponse{
		CourseNumber:    sec.CourseNumber,
		SectionID:       sec.SectionID,
		Year:            sec.Year,
		Term:            string(sec.Term),
		InstructorID:    sec.InstructorID,
		EnrollmentCount: sec.EnrollmentCount,
	}
}

func toSectionResponses(sections []model.Section) []dto.SectionResponse {
	result := make([]dto.SectionResponse, 0, len(sections))
	for i := range sections {
		result = append(result, toSectionResponse(&sections[i]))
	}
	return result
}
