package repository

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/Keaton-Harvey/DatabasesProject/internal/model"
)

// SemesterRepository 学期数据访问接口
type SemesterRepository interface {
	Create(ctx context.Context, semester *model.Semester) error
	Get(ctx context.Context, key model.SemesterKey) (*model.Semester, error)
	// List 按时间先后（年份，Spring < Summer < Fall）返回
	List(ctx context.Context) ([]model.Semester, error)
}

type semesterRepo struct {
	db *gorm.DB
}

// NewSemesterRepo 创建 SemesterRepository 实例
func NewSemesterRepo(db *gorm.DB) SemesterRepository {
	return &semesterRepo{db: db}
}

func (r *semesterRepo) Create(ctx context.Context, semester *model.Semester) error {
	return translateError("semester.create", r.db.WithContext(ctx).Create(semester).Error)
}

func (r *semesterRepo) Get(ctx context.Context, key model.SemesterKey) (*model.Semester, error) {
	var semester model.Semester
	err := r.db.WithContext(ctx).
		Where("year = ? AND term = ?", key.Year, key.Term).
		First(&semester).Error
	if err != nil {
		return nil, translateError("semester.get", err)
	}
	return &semester, nil
}

func (r *semesterRepo) List(ctx context.Context) ([]model.Semester, error) {
	var semesters []model.Semester
	err := r.db.WithContext(ctx).
		Order("year ASC").
		Find(&semesters).Error
	if err != nil {
		return nil, translateError("semester.list", err)
	}
	// term 为文本列，学年内顺序在内存中排
	sort.SliceStable(semesters, func(i, j int) bool {
		return semesters[i].Key().Compare(semesters[j].Key()) < 0
	})
	return semesters, nil
}
