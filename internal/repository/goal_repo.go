package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Keaton-Harvey/DatabasesProject/internal/model"
)

// GoalRepository 学位目标数据访问接口
type GoalRepository interface {
	Create(ctx context.Context, goal *model.Goal) error
	Get(ctx context.Context, degreeID, goalCode string) (*model.Goal, error)
	ListByDegree(ctx context.Context, degreeID string) ([]model.Goal, error)
}

type goalRepo struct {
	db *gorm.DB
}

// NewGoalRepo 创建 GoalRepository 实例
func NewGoalRepo(db *gorm.DB) GoalRepository {
	return &goalRepo{db: db}
}

func (r *goalRepo) Create(ctx context.Context, goal *model.Goal) error {
	return translateError("goal.create", r.db.WithContext(ctx).Create(goal).Error)
}

func (r *goalRepo) Get(ctx context.Context, degreeID, goalCode string) (*model.Goal, error) {
	var goal model.Goal
	err := r.db.WithContext(ctx).
		Where("degree_id = ? AND goal_code = ?", degreeID, goalCode).
		First(&goal).Error
	if err != nil {
		return nil, translateError("goal.get", err)
	}
	return &goal, nil
}

func (r *goalRepo) ListByDegree(ctx context.Context, degreeID string) ([]model.Goal, error) {
	var goals []model.Goal
	err := r.db.WithContext(ctx).
		Where("degree_id = ?", degreeID).
		Order("goal_code ASC").
		Find(&goals).Error
	return goals, translateError("goal.list_by_degree", err)
}
