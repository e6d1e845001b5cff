package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Keaton-Harvey/DatabasesProject/internal/model"
)

// CourseRepository 课程数据访问接口
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	GetByNumber(ctx context.Context, number string) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	// ListByDegree 学位关联的全部课程（含必修标记）
	ListByDegree(ctx context.Context, degreeID string) ([]model.DegreeCourse, error)
	// ListBySemester 该学期至少开设一个班级的课程
	ListBySemester(ctx context.Context, semester model.SemesterKey) ([]model.Course, error)
	// ListByGoals 课程 × 目标：课程所关联学位拥有的目标；degreeID 为空时不限学位，goalCodes 为空时不限目标
	ListByGoals(ctx context.Context, degreeID string, goalCodes []string) ([]model.CourseGoal, error)
}

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	return translateError("course.create", r.db.WithContext(ctx).Create(course).Error)
}

func (r *courseRepo) GetByNumber(ctx context.Context, number string) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Where("course_number = ?", number).
		First(&course).Error
	if err != nil {
		return nil, translateError("course.get", err)
	}
	return &course, nil
}

func (r *courseRepo) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).
		Order("course_number ASC").
		Find(&courses).Error
	return courses, translateError("course.list", err)
}

func (r *courseRepo) ListByDegree(ctx context.Context, degreeID string) ([]model.DegreeCourse, error) {
	var rows []model.DegreeCourse
	err := r.db.WithContext(ctx).
		Table("courses AS c").
		Select("c.course_number, c.name, cd.is_core").
		Joins("JOIN course_degrees cd ON cd.course_number = c.course_number").
		Where("cd.degree_id = ?", degreeID).
		Order("c.course_number ASC").
		Scan(&rows).Error
	return rows, translateError("course.list_by_degree", err)
}

func (r *courseRepo) ListBySemester(ctx context.Context, semester model.SemesterKey) ([]model.Course, error) {
	offered := r.db.Model(&model.Section{}).
		Select("course_number").
		Where("year = ? AND term = ?", semester.Year, semester.Term)

	var courses []model.Course
	err := r.db.WithContext(ctx).
		Where("course_number IN (?)", offered).
		Order("course_number ASC").
		Find(&courses).Error
	return courses, translateError("course.list_by_semester", err)
}

func (r *courseRepo) ListByGoals(ctx context.Context, degreeID string, goalCodes []string) ([]model.CourseGoal, error) {
	q := r.db.WithContext(ctx).
		Table("courses AS c").
		Select("c.course_number, c.name AS course_name, cd.degree_id, g.goal_code, cd.is_core").
		Joins("JOIN course_degrees cd ON cd.course_number = c.course_number").
		Joins("JOIN goals g ON g.degree_id = cd.degree_id")
	if degreeID != "" {
		q = q.Where("cd.degree_id = ?", degreeID)
	}
	if len(goalCodes) > 0 {
		q = q.Where("g.goal_code IN ?", goalCodes)
	}

	var rows []model.CourseGoal
	err := q.Order("c.course_number ASC, cd.degree_id ASC, g.goal_code ASC").Scan(&rows).Error
	return rows, translateError("course.list_by_goals", err)
}
