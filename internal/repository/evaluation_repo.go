package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Keaton-Harvey/DatabasesProject/internal/model"
)

// evaluationKeyColumns 评估表复合主键列
var evaluationKeyColumns = []clause.Column{
	{Name: "course_number"},
	{Name: "section_id"},
	{Name: "year"},
	{Name: "term"},
	{Name: "degree_id"},
	{Name: "goal_code"},
}

// evaluationDataColumns 评估数据列（upsert 时覆盖）
var evaluationDataColumns = []string{
	"evaluation_type",
	"grade_count_a",
	"grade_count_b",
	"grade_count_c",
	"grade_count_f",
	"improvement_note",
	"updated_at",
}

// EvaluationRepository 评估记录数据访问接口
type EvaluationRepository interface {
	// CreateIfAbsent 批量插入，主键已存在的行保持不变；返回实际新插入行数
	CreateIfAbsent(ctx context.Context, evaluations []model.Evaluation) (int64, error)
	// Upsert 按主键插入或覆盖评估数据列，不会产生重复行
	Upsert(ctx context.Context, evaluation *model.Evaluation) error
	Get(ctx context.Context, key model.EvaluationKey) (*model.Evaluation, error)
	ListBySection(ctx context.Context, key model.SectionKey) ([]model.Evaluation, error)
	ListBySemester(ctx context.Context, semester model.SemesterKey) ([]model.Evaluation, error)
}

type evaluationRepo struct {
	db *gorm.DB
}

// NewEvaluationRepo 创建 EvaluationRepository 实例
func NewEvaluationRepo(db *gorm.DB) EvaluationRepository {
	return &evaluationRepo{db: db}
}

func (r *evaluationRepo) CreateIfAbsent(ctx context.Context, evaluations []model.Evaluation) (int64, error) {
	if len(evaluations) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: evaluationKeyColumns, DoNothing: true}).
		Create(&evaluations)
	if result.Error != nil {
		return 0, translateError("evaluation.create_if_absent", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *evaluationRepo) Upsert(ctx context.Context, evaluation *model.Evaluation) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   evaluationKeyColumns,
			DoUpdates: clause.AssignmentColumns(evaluationDataColumns),
		}).
		Create(evaluation).Error
	return translateError("evaluation.upsert", err)
}

func (r *evaluationRepo) Get(ctx context.Context, key model.EvaluationKey) (*model.Evaluation, error) {
	var evaluation model.Evaluation
	err := r.db.WithContext(ctx).
		Where("course_number = ? AND section_id = ? AND year = ? AND term = ? AND degree_id = ? AND goal_code = ?",
			key.CourseNumber, key.SectionID, key.Year, key.Term, key.DegreeID, key.GoalCode).
		First(&evaluation).Error
	if err != nil {
		return nil, translateError("evaluation.get", err)
	}
	return &evaluation, nil
}

func (r *evaluationRepo) ListBySection(ctx context.Context, key model.SectionKey) ([]model.Evaluation, error) {
	var evaluations []model.Evaluation
	err := r.db.WithContext(ctx).
		Where("course_number = ? AND section_id = ? AND year = ? AND term = ?",
			key.CourseNumber, key.SectionID, key.Year, key.Term).
		Order("degree_id ASC, goal_code ASC").
		Find(&evaluations).Error
	return evaluations, translateError("evaluation.list_by_section", err)
}

func (r *evaluationRepo) ListBySemester(ctx context.Context, semester model.SemesterKey) ([]model.Evaluation, error) {
	var evaluations []model.Evaluation
	err := r.db.WithContext(ctx).
		Where("year = ? AND term = ?", semester.Year, semester.Term).
		Order("course_number ASC, section_id ASC, degree_id ASC, goal_code ASC").
		Find(&evaluations).Error
	return evaluations, translateError("evaluation.list_by_semester", err)
}
