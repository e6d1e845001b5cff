package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Keaton-Harvey/DatabasesProject/internal/model"
)

// CourseDegreeRepository 课程-学位关联数据访问接口
type CourseDegreeRepository interface {
	Create(ctx context.Context, link *model.CourseDegree) error
	Get(ctx context.Context, courseNumber, degreeID string) (*model.CourseDegree, error)
	ListByCourse(ctx context.Context, courseNumber string) ([]model.CourseDegree, error)
	// ListDetailsByCourse 课程所属学位（含学位名称与层次）
	ListDetailsByCourse(ctx context.Context, courseNumber string) ([]model.CourseDegreeDetail, error)
}

type courseDegreeRepo struct {
	db *gorm.DB
}

// NewCourseDegreeRepo 创建 CourseDegreeRepository 实例
func NewCourseDegreeRepo(db *gorm.DB) CourseDegreeRepository {
	return &courseDegreeRepo{db: db}
}

func (r *courseDegreeRepo) Create(ctx context.Context, link *model.CourseDegree) error {
	return translateError("course_degree.create", r.db.WithContext(ctx).Create(link).Error)
}

func (r *courseDegreeRepo) Get(ctx context.Context, courseNumber, degreeID string) (*model.CourseDegree, error) {
	var link model.CourseDegree
	err := r.db.WithContext(ctx).
		Where("course_number = ? AND degree_id = ?", courseNumber, degreeID).
		First(&link).Error
	if err != nil {
		return nil, translateError("course_degree.get", err)
	}
	return &link, nil
}

func (r *courseDegreeRepo) ListByCourse(ctx context.Context, courseNumber string) ([]model.CourseDegree, error) {
	var links []model.CourseDegree
	err := r.db.WithContext(ctx).
		Where("course_number = ?", courseNumber).
		Order("degree_id ASC").
		Find(&links).Error
	return links, translateError("course_degree.list_by_course", err)
}

func (r *courseDegreeRepo) ListDetailsByCourse(ctx context.Context, courseNumber string) ([]model.CourseDegreeDetail, error) {
	var rows []model.CourseDegreeDetail
	err := r.db.WithContext(ctx).
		Table("course_degrees AS cd").
		Select("d.degree_id, d.name AS degree_name, d.level, cd.is_core").
		Joins("JOIN degrees d ON d.degree_id = cd.degree_id").
		Where("cd.course_number = ?", courseNumber).
		Order("d.degree_id ASC").
		Scan(&rows).Error
	return rows, translateError("course_degree.list_details", err)
}
