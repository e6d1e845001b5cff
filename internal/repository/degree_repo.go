package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Keaton-Harvey/DatabasesProject/internal/model"
)

// DegreeRepository 学位数据访问接口
type DegreeRepository interface {
	Create(ctx context.Context, degree *model.Degree) error
	GetByID(ctx context.Context, id string) (*model.Degree, error)
	GetByNameLevel(ctx context.Context, name string, level model.DegreeLevel) (*model.Degree, error)
	List(ctx context.Context) ([]model.Degree, error)
}

type degreeRepo struct {
	db *gorm.DB
}

// NewDegreeRepo 创建 DegreeRepository 实例
func NewDegreeRepo(db *gorm.DB) DegreeRepository {
	return &degreeRepo{db: db}
}

func (r *degreeRepo) Create(ctx context.Context, degree *model.Degree) error {
	return translateError("degree.create", r.db.WithContext(ctx).Create(degree).Error)
}

func (r *degreeRepo) GetByID(ctx context.Context, id string) (*model.Degree, error) {
	var degree model.Degree
	err := r.db.WithContext(ctx).
		Where("degree_id = ?", id).
		First(&degree).Error
	if err != nil {
		return nil, translateError("degree.get", err)
	}
	return &degree, nil
}

func (r *degreeRepo) GetByNameLevel(ctx context.Context, name string, level model.DegreeLevel) (*model.Degree, error) {
	var degree model.Degree
	err := r.db.WithContext(ctx).
		Where("name = ? AND level = ?", name, level).
		First(&degree).Error
	if err != nil {
		return nil, translateError("degree.get_by_name_level", err)
	}
	return &degree, nil
}

func (r *degreeRepo) List(ctx context.Context) ([]model.Degree, error) {
	var degrees []model.Degree
	err := r.db.WithContext(ctx).
		Order("degree_id ASC").
		Find(&degrees).Error
	return degrees, translateError("degree.list", err)
}
