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

// DegreeService 学位与学位目标业务接口
type DegreeService interface {
	Create(ctx context.Context, req *dto.CreateDegreeRequest) (*dto.DegreeResponse, error)
	List(ctx context.Context) ([]dto.DegreeResponse, error)
	// AddGoal 新增学位目标，并为该学位已有班级补齐占位记录
	AddGoal(ctx context.Context, req *dto.CreateGoalRequest) (*dto.GoalResponse, error)
	ListGoals(ctx context.Context, degreeID string) ([]dto.GoalResponse, error)
}

type degreeService struct {
	repo        *repository.Repository
	provisioner *Provisioner
	logger      *zap.Logger
}

// NewDegreeService 创建 DegreeService 实例
func NewDegreeService(repo *repository.Repository, provisioner *Provisioner, logger *zap.Logger) DegreeService {
	return &degreeService{repo: repo, provisioner: provisioner, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *degreeService) Create(ctx context.Context, req *dto.CreateDegreeRequest) (*dto.DegreeResponse, error) {
	degree := &model.Degree{
		DegreeID: strings.TrimSpace(req.DegreeID),
		Name:     strings.TrimSpace(req.Name),
		Level:    model.DegreeLevel(strings.TrimSpace(req.Level)),
	}
	if err := firstError(
		validator.DegreeID(degree.DegreeID),
		validator.Name("name", degree.Name),
		validator.DegreeLevel(string(degree.Level)),
	); err != nil {
		return nil, err
	}

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		// 编号重复与 (名称, 层次) 重复是两条不同约束，分别报告
		found, err := exists(tx.Degree.GetByID(ctx, degree.DegreeID))
		if err != nil {
			return err
		}
		if found {
			return pkgerrors.NewDuplicate("degree", model.ConstraintDegreeID)
		}

		found, err = exists(tx.Degree.GetByNameLevel(ctx, degree.Name, degree.Level))
		if err != nil {
			return err
		}
		if found {
			return pkgerrors.NewDuplicate("degree", model.ConstraintDegreeNameLevel)
		}

		return tx.Degree.Create(ctx, degree)
	})
	if err != nil {
		logFailure(s.logger, "创建学位失败", err, zap.String("degree_id", degree.DegreeID))
		return nil, err
	}

	s.logger.Info("学位已创建", zap.String("degree_id", degree.DegreeID))
	return toDegreeResponse(degree), nil
}

// ────────────────────── List ──────────────────────

func (s *degreeService) List(ctx context.Context) ([]dto.DegreeResponse, error) {
	degrees, err := s.repo.Degree.List(ctx)
	if err != nil {
		s.logger.Error("列出学位失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.DegreeResponse, 0, len(degrees))
	for i := range degrees {
		result = append(result, *toDegreeResponse(&degrees[i]))
	}
	return result, nil
}

// ────────────────────── AddGoal ──────────────────────

func (s *degreeService) AddGoal(ctx context.Context, req *dto.CreateGoalRequest) (*dto.GoalResponse, error) {
	goal := &model.Goal{
		DegreeID:    strings.TrimSpace(req.DegreeID),
		GoalCode:    strings.TrimSpace(req.GoalCode),
		Description: strings.TrimSpace(req.Description),
	}
	if err := firstError(
		validator.DegreeID(goal.DegreeID),
		validator.GoalCode(goal.GoalCode),
		validator.Description(goal.Description),
	); err != nil {
		return nil, err
	}

	var provisioned int64
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if _, err := requireDegree(ctx, tx, goal.DegreeID); err != nil {
			return err
		}

		found, err := exists(tx.Goal.Get(ctx, goal.DegreeID, goal.GoalCode))
		if err != nil {
			return err
		}
		if found {
			return pkgerrors.NewDuplicate("goal", model.ConstraintGoalPK)
		}

		if err := tx.Goal.Create(ctx, goal); err != nil {
			return err
		}

		sections, err := tx.Section.ListByDegree(ctx, goal.DegreeID)
		if err != nil {
			return err
		}
		provisioned, err = s.provisioner.ProvisionSections(ctx, tx, sections)
		return err
	})
	if err != nil {
		logFailure(s.logger, "创建学位目标失败", err,
			zap.String("degree_id", goal.DegreeID), zap.String("goal_code", goal.GoalCode))
		return nil, err
	}

	s.logger.Info("学位目标已创建",
		zap.String("degree_id", goal.DegreeID),
		zap.String("goal_code", goal.GoalCode),
		zap.Int64("provisioned", provisioned),
	)
	resp := toGoalResponse(goal)
	resp.ProvisionedEvaluations = provisioned
	return resp, nil
}

// ────────────────────── ListGoals ──────────────────────

func (s *degreeService) ListGoals(ctx context.Context, degreeID string) ([]dto.GoalResponse, error) {
	degreeID = strings.TrimSpace(degreeID)
	if err := validator.DegreeID(degreeID); err != nil {
		return nil, err
	}
	if _, err := requireDegree(ctx, s.repo, degreeID); err != nil {
		logFailure(s.logger, "查询学位失败", err, zap.String("degree_id", degreeID))
		return nil, err
	}

	goals, err := s.repo.Goal.ListByDegree(ctx, degreeID)
	if err != nil {
		s.logger.Error("列出学位目标失败", zap.String("degree_id", degreeID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.GoalResponse, 0, len(goals))
	for i := range goals {
		result = append(result, *toGoalResponse(&goals[i]))
	}
	return result, nil
}

// ── 转换 ──

func toDegreeResponse(d *model.Degree) *dto.DegreeResponse {
	return &dto.DegreeResponse{DegreeID: d.DegreeID, Name: d.Name, Level: string(d.Level)}
}

func toGoalResponse(g *model.Goal) *dto.GoalResponse {
	return &dto.GoalResponse{DegreeID: g.DegreeID, GoalCode: g.GoalCode, Description: g.Description}
}
