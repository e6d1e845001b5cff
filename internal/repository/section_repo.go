package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Keaton-Harvey/DatabasesProject/internal/model"
)

// SectionRepository 课程班级数据访问接口
type SectionRepository interface {
	Create(ctx context.Context, section *model.Section) error
	Get(ctx context.Context, key model.SectionKey) (*model.Section, error)
	ListBySemester(ctx context.Context, semester model.SemesterKey) ([]model.Section, error)
	ListByCourse(ctx context.Context, courseNumber string) ([]model.Section, error)
	ListByInstructor(ctx context.Context, instructorID string) ([]model.Section, error)
	// ListByDegree 关联到该学位的所有课程的班级
	ListByDegree(ctx context.Context, degreeID string) ([]model.Section, error)
}

type sectionRepo struct {
	db *gorm.DB
}

// NewSectionRepo 创建 SectionRepository 实例
func NewSectionRepo(db *gorm.DB) SectionRepository {
	return &sectionRepo{db: db}
}

func (r *sectionRepo) Create(ctx context.Context, section *model.Section) error {
	return translateError("section.create", r.db.WithContext(ctx).Create(section).Error)
}

func (r *sectionRepo) Get(ctx context.Context, key model.SectionKey) (*model.Section, error) {
	var section model.Section
	err := r.db.WithContext(ctx).
		Where("course_number = ? AND section_id = ? AND year = ? AND term = ?",
			key.CourseNumber, key.SectionID, key.Year, key.Term).
		First(&section).Error
	if err != nil {
		return nil, translateError("section.get", err)
	}
	return &section, nil
}

func (r *sectionRepo) ListBySemester(ctx context.Context, semester model.SemesterKey) ([]model.Section, error) {
	var sections []model.Section
	err := r.db.WithContext(ctx).
		Where("year = ? AND term = ?", semester.Year, semester.Term).
		Order("course_number ASC, section_id ASC").
		Find(&sections).Error
	return sections, translateError("section.list_by_semester", err)
}

func (r *sectionRepo) ListByCourse(ctx context.Context, courseNumber string) ([]model.Section, error) {
	var sections []model.Section
	err := r.db.WithContext(ctx).
		Where("course_number = ?", courseNumber).
		Order("year ASC, section_id ASC").
		Find(&sections).Error
	return sections, translateError("section.list_by_course", err)
}

func (r *sectionRepo) ListByInstructor(ctx context.Context, instructorID string) ([]model.Section, error) {
	var sections []model.Section
	err := r.db.WithContext(ctx).
		Where("instructor_id = ?", instructorID).
		Order("year ASC, course_number ASC, section_id ASC").
		Find(&sections).Error
	return sections, translateError("section.list_by_instructor", err)
}

func (r *sectionRepo) ListByDegree(ctx context.Context, degreeID string) ([]model.Section, error) {
	linked := r.db.Model(&model.CourseDegree{}).
		Select("course_number").
		Where("degree_id = ?", degreeID)

	var sections []model.Section
	err := r.db.WithContext(ctx).
		Where("course_number IN (?)", linked).
		Order("course_number ASC, year ASC, section_id ASC").
		Find(&sections).Error
	return sections, translateError("section.list_by_degree", err)
}
