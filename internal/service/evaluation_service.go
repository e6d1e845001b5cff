package service

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Keaton-Harvey/DatabasesProject/internal/dto"
	"github.com/Keaton-Harvey/DatabasesProject/internal/model"
	"github.com/Keaton-Harvey/DatabasesProject/internal/repository"
	"github.com/Keaton-Harvey/DatabasesProject/internal/validator"
	pkgerrors "github.com/Keaton-Harvey/DatabasesProject/pkg/errors"
)

// EvaluationService 评估录入、跨学位复制与录入状态业务接口
type EvaluationService interface {
	// Update 覆盖已有评估记录的评估数据，返回班级最新状态与可复制的目标学位
	Update(ctx context.Context, req *dto.UpdateEvaluationRequest) (*dto.UpdateEvaluationResponse, error)
	// Duplicate 将评估数据复制到课程关联的其他学位的同编号目标；全部成功或全部不写入
	Duplicate(ctx context.Context, req *dto.DuplicateEvaluationRequest) (*dto.DuplicateEvaluationResponse, error)
	ListBySection(ctx context.Context, key model.SectionKey) ([]dto.EvaluationResponse, error)
	GetSectionStatus(ctx context.Context, key model.SectionKey) (*dto.SectionStatusResponse, error)
	GetSemesterStatus(ctx context.Context, year int, term string) (*dto.SemesterStatusResponse, error)
}

type evaluationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEvaluationService 创建 EvaluationService 实例
func NewEvaluationService(repo *repository.Repository, logger *zap.Logger) EvaluationService {
	return &evaluationService{repo: repo, logger: logger}
}

// ────────────────────── Update ──────────────────────

func (s *evaluationService) Update(ctx context.Context, req *dto.UpdateEvaluationRequest) (*dto.UpdateEvaluationResponse, error) {
	key, err := evaluationKey(&req.EvaluationKeyRequest)
	if err != nil {
		return nil, err
	}
	if err := firstError(
		validator.GradeCounts(req.GradeCountA, req.GradeCountB, req.GradeCountC, req.GradeCountF),
		validator.EvaluationType(optionalValue(req.EvaluationType)),
	); err != nil {
		return nil, err
	}

	var result dto.UpdateEvaluationResponse
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		section, err := requireSection(ctx, tx, key.SectionKey)
		if err != nil {
			return err
		}
		current, err := requireEvaluation(ctx, tx, key)
		if err != nil {
			return err
		}

		updated := *current
		updated.EvaluationType = normalizeOptional(req.EvaluationType)
		updated.GradeCountA = req.GradeCountA
		updated.GradeCountB = req.GradeCountB
		updated.GradeCountC = req.GradeCountC
		updated.GradeCountF = req.GradeCountF
		updated.ImprovementNote = normalizeOptional(req.ImprovementNote)

		if sum := updated.GradeSum(); sum != section.EnrollmentCount {
			return &pkgerrors.ConsistencyError{Expected: section.EnrollmentCount, Actual: sum}
		}

		if err := tx.Evaluation.Upsert(ctx, &updated); err != nil {
			return err
		}

		evaluations, err := tx.Evaluation.ListBySection(ctx, key.SectionKey)
		if err != nil {
			return err
		}
		candidates, err := duplicationCandidates(ctx, tx, key)
		if err != nil {
			return err
		}

		result = dto.UpdateEvaluationResponse{
			Evaluation:            toEvaluationResponse(&updated),
			SectionStatus:         buildSectionStatus(section, evaluations),
			DuplicationCandidates: candidates,
		}
		return nil
	})
	if err != nil {
		logFailure(s.logger, "更新评估失败", err, zap.Stringer("evaluation", key))
		return nil, err
	}

	s.logger.Info("评估已更新",
		zap.Stringer("evaluation", key),
		zap.String("section_status", result.SectionStatus.Status),
		zap.Strings("duplication_candidates", result.DuplicationCandidates),
	)
	return &result, nil
}

// ────────────────────── Duplicate ──────────────────────

func (s *evaluationService) Duplicate(ctx context.Context, req *dto.DuplicateEvaluationRequest) (*dto.DuplicateEvaluationResponse, error) {
	key, err := evaluationKey(&req.EvaluationKeyRequest)
	if err != nil {
		return nil, err
	}
	requested, err := normalizeTargets(req.TargetDegreeIDs, key.DegreeID)
	if err != nil {
		return nil, err
	}

	var result dto.DuplicateEvaluationResponse
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		section, err := requireSection(ctx, tx, key.SectionKey)
		if err != nil {
			return err
		}
		source, err := requireEvaluation(ctx, tx, key)
		if err != nil {
			return err
		}
		// 只有满足人数一致性的评估才可复制，占位记录不可作为来源
		if sum := source.GradeSum(); sum != section.EnrollmentCount {
			return &pkgerrors.ConsistencyError{Expected: section.EnrollmentCount, Actual: sum}
		}

		candidates, err := duplicationCandidates(ctx, tx, key)
		if err != nil {
			return err
		}
		targets := requested
		if len(targets) == 0 {
			targets = candidates
		}

		// 先检查全部目标，任何一个不满足都不写入
		linked := make(map[string]bool, len(candidates))
		for _, id := range candidates {
			linked[id] = true
		}
		for _, degreeID := range targets {
			if !linked[degreeID] {
				return pkgerrors.NewReference("course_degree", key.CourseNumber+"/"+degreeID)
			}
			found, err := exists(tx.Goal.Get(ctx, degreeID, key.GoalCode))
			if err != nil {
				return err
			}
			if !found {
				return pkgerrors.NewReference("goal", degreeID+"/"+key.GoalCode)
			}
		}

		result.Updated = make([]dto.EvaluationResponse, 0, len(targets))
		for _, degreeID := range targets {
			copied := model.NewPlaceholderEvaluation(key.SectionKey, degreeID, key.GoalCode)
			copied.EvaluationType = source.EvaluationType
			copied.GradeCountA = source.GradeCountA
			copied.GradeCountB = source.GradeCountB
			copied.GradeCountC = source.GradeCountC
			copied.GradeCountF = source.GradeCountF
			copied.ImprovementNote = source.ImprovementNote
			if err := tx.Evaluation.Upsert(ctx, &copied); err != nil {
				return err
			}
			result.Updated = append(result.Updated, toEvaluationResponse(&copied))
		}

		evaluations, err := tx.Evaluation.ListBySection(ctx, key.SectionKey)
		if err != nil {
			return err
		}
		result.SectionStatus = buildSectionStatus(section, evaluations)
		return nil
	})
	if err != nil {
		logFailure(s.logger, "复制评估失败", err, zap.Stringer("evaluation", key))
		return nil, err
	}

	s.logger.Info("评估已复制到其他学位",
		zap.Stringer("source", key),
		zap.Int("targets", len(result.Updated)),
	)
	return &result, nil
}

// ────────────────────── ListBySection ──────────────────────

func (s *evaluationService) ListBySection(ctx context.Context, key model.SectionKey) ([]dto.EvaluationResponse, error) {
	if err := validateSectionKey(key); err != nil {
		return nil, err
	}
	if _, err := requireSection(ctx, s.repo, key); err != nil {
		logFailure(s.logger, "查询班级失败", err, zap.Stringer("section", key))
		return nil, err
	}

	evaluations, err := s.repo.Evaluation.ListBySection(ctx, key)
	if err != nil {
		s.logger.Error("列出班级评估失败", zap.Stringer("section", key), zap.Error(err))
		return nil, err
	}

	result := make([]dto.EvaluationResponse, 0, len(evaluations))
	for i := range evaluations {
		result = append(result, toEvaluationResponse(&evaluations[i]))
	}
	return result, nil
}

// ────────────────────── GetSectionStatus ──────────────────────

func (s *evaluationService) GetSectionStatus(ctx context.Context, key model.SectionKey) (*dto.SectionStatusResponse, error) {
	if err := validateSectionKey(key); err != nil {
		return nil, err
	}
	section, err := requireSection(ctx, s.repo, key)
	if err != nil {
		logFailure(s.logger, "查询班级失败", err, zap.Stringer("section", key))
		return nil, err
	}

	evaluations, err := s.repo.Evaluation.ListBySection(ctx, key)
	if err != nil {
		s.logger.Error("查询班级评估失败", zap.Stringer("section", key), zap.Error(err))
		return nil, err
	}

	status := buildSectionStatus(section, evaluations)
	return &status, nil
}

// ────────────────────── GetSemesterStatus ──────────────────────

func (s *evaluationService) GetSemesterStatus(ctx context.Context, year int, term string) (*dto.SemesterStatusResponse, error) {
	term = strings.TrimSpace(term)
	if err := validator.Semester(year, term); err != nil {
		return nil, err
	}
	semester := model.SemesterKey{Year: year, Term: model.Term(term)}
	if _, err := requireSemester(ctx, s.repo, semester); err != nil {
		logFailure(s.logger, "查询学期失败", err, zap.Stringer("semester", semester))
		return nil, err
	}

	sections, err := s.repo.Section.ListBySemester(ctx, semester)
	if err != nil {
		s.logger.Error("列出学期班级失败", zap.Stringer("semester", semester), zap.Error(err))
		return nil, err
	}
	evaluations, err := s.repo.Evaluation.ListBySemester(ctx, semester)
	if err != nil {
		s.logger.Error("列出学期评估失败", zap.Stringer("semester", semester), zap.Error(err))
		return nil, err
	}

	return &dto.SemesterStatusResponse{
		Year:     year,
		Term:     term,
		Sections: buildSemesterStatus(sections, evaluations),
	}, nil
}

// ── 辅助 ──

// duplicationCandidates 课程关联的、除当前学位外的其他学位（按编号排序）
func duplicationCandidates(ctx context.Context, tx *repository.Repository, key model.EvaluationKey) ([]string, error) {
	links, err := tx.CourseDegree.ListByCourse(ctx, key.CourseNumber)
	if err != nil {
		return nil, err
	}
	candidates := make([]string, 0, len(links))
	for _, link := range links {
		if link.DegreeID != key.DegreeID {
			candidates = append(candidates, link.DegreeID)
		}
	}
	sort.Strings(candidates)
	return candidates, nil
}

// normalizeTargets 去除空白与重复；不能包含来源学位本身
func normalizeTargets(ids []string, sourceDegreeID string) ([]string, error) {
	seen := make(map[string]bool, len(ids))
	targets := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if err := validator.DegreeID(id); err != nil {
			return nil, pkgerrors.NewValidation("target_degree_ids", err.(*pkgerrors.ValidationError).Reason)
		}
		if id == sourceDegreeID {
			return nil, pkgerrors.NewValidation("target_degree_ids", "不能包含来源学位")
		}
		if !seen[id] {
			seen[id] = true
			targets = append(targets, id)
		}
	}
	sort.Strings(targets)
	return targets, nil
}

func evaluationKey(req *dto.EvaluationKeyRequest) (model.EvaluationKey, error) {
	key := model.EvaluationKey{
		SectionKey: model.SectionKey{
			CourseNumber: strings.TrimSpace(req.CourseNumber),
			SectionID:    strings.TrimSpace(req.SectionID),
			Year:         req.Year,
			Term:         model.Term(strings.TrimSpace(req.Term)),
		},
		DegreeID: strings.TrimSpace(req.DegreeID),
		GoalCode: strings.TrimSpace(req.GoalCode),
	}
	if err := firstError(
		validateSectionKey(key.SectionKey),
		validator.DegreeID(key.DegreeID),
		validator.GoalCode(key.GoalCode),
	); err != nil {
		return key, err
	}
	return key, nil
}

func validateSectionKey(key model.SectionKey) error {
	return firstError(
		validator.CourseNumber(key.CourseNumber),
		validator.SectionID(key.SectionID),
		validator.Semester(key.Year, string(key.Term)),
	)
}

// normalizeOptional 去除首尾空白；空串视为未填写
func normalizeOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func optionalValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func toEvaluationResponse(e *model.Evaluation) dto.EvaluationResponse {
	return dto.EvaluationResponse{
		CourseNumber:    e.CourseNumber,
		SectionID:       e.SectionID,
		Year:            e.Year,
		Term:            string(e.Term),
		DegreeID:        e.DegreeID,
		GoalCode:        e.GoalCode,
		EvaluationType:  e.EvaluationType,
		GradeCountA:     e.GradeCountA,
		GradeCountB:     e.GradeCountB,
		GradeCountC:     e.GradeCountC,
		GradeCountF:     e.GradeCountF,
		ImprovementNote: e.ImprovementNote,
		Status:          string(evaluationStatus(e)),
	}
}
