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

// SemesterService 学期业务接口
type SemesterService interface {
	Create(ctx context.Context, req *dto.CreateSemesterRequest) (*dto.SemesterResponse, error)
	// List 按时间先后返回全部学期
	List(ctx context.Context) ([]dto.SemesterResponse, error)
}

type semesterService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSemesterService 创建 SemesterService 实例
func NewSemesterService(repo *repository.Repository, logger *zap.Logger) SemesterService {
	return &semesterService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *semesterService) Create(ctx context.Context, req *dto.CreateSemesterRequest) (*dto.SemesterResponse, error) {
	semester := &model.Semester{Year: req.Year, Term: model.Term(strings.TrimSpace(req.Term))}
	if err := validator.Semester(semester.Year, string(semester.Term)); err != nil {
		return nil, err
	}

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		found, err := exists(tx.Semester.Get(ctx, semester.Key()))
		if err != nil {
			return err
		}
		if found {
			return pkgerrors.NewDuplicate("semester", model.ConstraintSemesterPK)
		}
		return tx.Semester.Create(ctx, semester)
	})
	if err != nil {
		logFailure(s.logger, "创建学期失败", err, zap.Stringer("semester", semester.Key()))
		return nil, err
	}

	return &dto.SemesterResponse{Year: semester.Year, Term: string(semester.Term)}, nil
}

// ────────────────────── List ──────────────────────

func (s *semesterService) List(ctx context.Context) ([]dto.SemesterResponse, error) {
	semesters, err := s.repo.Semester.List(ctx)
	if err != nil {
		s.logger.Error("列出学期失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SemesterResponse, 0, len(semesters))
	for _, sem := range semesters {
		result = append(result, dto.SemesterResponse{Year: sem.Year, Term: string(sem.Term)})
	}
	return result, nil
}
