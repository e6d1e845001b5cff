package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Degree       DegreeRepository
	Course       CourseRepository
	Instructor   InstructorRepository
	Goal         GoalRepository
	Semester     SemesterRepository
	CourseDegree CourseDegreeRepository
	Section      SectionRepository
	Evaluation   EvaluationRepository

	db *gorm.DB
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Degree:       NewDegreeRepo(db),
		Course:       NewCourseRepo(db),
		Instructor:   NewInstructorRepo(db),
		Goal:         NewGoalRepo(db),
		Semester:     NewSemesterRepo(db),
		CourseDegree: NewCourseDegreeRepo(db),
		Section:      NewSectionRepo(db),
		Evaluation:   NewEvaluationRepo(db),
		db:           db,
	}
}

// Transaction 在单个数据库事务中执行 fn，fn 收到绑定到该事务的 Repository。
// fn 返回错误（或 panic）时整体回滚，不留下部分写入。
// 未绑定连接的聚合（测试中手工组装的 mock）直接在自身上执行 fn。
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
	return translateError("transaction", err)
}
