package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Keaton-Harvey/DatabasesProject/internal/model"
)

// InstructorRepository 教师数据访问接口
type InstructorRepository interface {
	Create(ctx context.Context, instructor *model.Instructor) error
	GetByID(ctx context.Context, id string) (*model.Instructor, error)
	List(ctx context.Context) ([]model.Instructor, error)
}

type instructorRepo struct {
	db *gorm.DB
}

// NewInstructorRepo 创建 InstructorRepository 实例
func NewInstructorRepo(db *gorm.DB) InstructorRepository {
	return &instructorRepo{db: db}
}

func (r *instructorRepo) Create(ctx context.Context, instructor *model.Instructor) error {
	return translateError("instructor.create", r.db.WithContext(ctx).Create(instructor).Error)
}

func (r *instructorRepo) GetByID(ctx context.Context, id string) (*model.Instructor, error) {
	var instructor model.Instructor
	err := r.db.WithContext(ctx).
		Where("instructor_id = ?", id).
		First(&instructor).Error
	if err != nil {
		return nil, translateError("instructor.get", err)
	}
	return &instructor, nil
}

func (r *instructorRepo) List(ctx context.Context) ([]model.Instructor, error) {
	var instructors []model.Instructor
	err := r.db.WithContext(ctx).
		Order("name ASC, instructor_id ASC").
		Find(&instructors).Error
	return instructors, translateError("instructor.list", err)
}
