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

// InstructorService 教师业务接口
type InstructorService interface {
	Create(ctx context.Context, req *dto.CreateInstructorRequest) (*dto.InstructorResponse, error)
	List(ctx context.Context) ([]dto.InstructorResponse, error)
}

type instructorService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewInstructorService 创建 InstructorService 实例
func NewInstructorService(repo *repository.Repository, logger *zap.Logger) InstructorService {
	return &instructorService{repo: repo, logger: logger}
}

func (s *instructorService) Create(ctx context.Context, req *dto.CreateInstructorRequest) (*dto.InstructorResponse, error) {
	instructor := &model.Instructor{
		InstructorID: strings.TrimSpace(req.InstructorID),
		Name:         strings.TrimSpace(req.Name),
	}
	if err := firstError(
		validator.InstructorID(instructor.InstructorID),
		validator.PersonName(instructor.Name),
	); err != nil {
		return nil, err
	}

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		found, err := exists(tx.Instructor.GetByID(ctx, instructor.InstructorID))
		if err != nil {
			return err
		}
		if found {
			return pkgerrors.NewDuplicate("instructor", model.ConstraintInstructorPK)
		}
		return tx.Instructor.Create(ctx, instructor)
	})
	if err != nil {
		logFailure(s.logger, "创建教师失败", err, zap.String("instructor_id", instructor.InstructorID))
		return nil, err
	}

	return &dto.InstructorResponse{InstructorID: instructor.InstructorID, Name: instructor.Name}, nil
}

func (s *instructorService) List(ctx context.Context) ([]dto.InstructorResponse, error) {
	instructors, err := s.repo.Instructor.List(ctx)
	if err != nil {
		s.logger.Error("列出教师失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.InstructorResponse, 0, len(instructors))
	for _, i := range instructors {
		result = append(result, dto.InstructorResponse{InstructorID: i.InstructorID, Name: i.Name})
	}
	return result, nil
}
