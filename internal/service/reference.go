package service

import (
	"context"

	"github.com/Keaton-Harvey/DatabasesProject/internal/model"
	"github.com/Keaton-Harvey/DatabasesProject/internal/repository"
	pkgerrors "github.com/Keaton-Harvey/DatabasesProject/pkg/errors"
)

// ── 引用检查：不存在时返回 ReferenceError，其余存储错误原样返回 ──

func requireDegree(ctx context.Context, repo *repository.Repository, degreeID string) (*model.Degree, error) {
	degree, err := repo.Degree.GetByID(ctx, degreeID)
	if isNotFound(err) {
		return nil, pkgerrors.NewReference("degree", degreeID)
	}
	return degree, err
}

func requireCourse(ctx context.Context, repo *repository.Repository, courseNumber string) (*model.Course, error) {
	course, err := repo.Course.GetByNumber(ctx, courseNumber)
	if isNotFound(err) {
		return nil, pkgerrors.NewReference("course", courseNumber)
	}
	return course, err
}

func requireInstructor(ctx context.Context, repo *repository.Repository, instructorID string) (*model.Instructor, error) {
	instructor, err := repo.Instructor.GetByID(ctx, instructorID)
	if isNotFound(err) {
		return nil, pkgerrors.NewReference("instructor", instructorID)
	}
	return instructor, err
}

func requireSemester(ctx context.Context, repo *repository.Repository, key model.SemesterKey) (*model.Semester, error) {
	semester, err := repo.Semester.Get(ctx, key)
	if isNotFound(err) {
		return nil, pkgerrors.NewReference("semester", key.String())
	}
	return semester, err
}

func requireSection(ctx context.Context, repo *repository.Repository, key model.SectionKey) (*model.Section, error) {
	section, err := repo.Section.Get(ctx, key)
	if isNotFound(err) {
		return nil, pkgerrors.NewReference("section", key.String())
	}
	return section, err
}

func requireEvaluation(ctx context.Context, repo *repository.Repository, key model.EvaluationKey) (*model.Evaluation, error) {
	evaluation, err := repo.Evaluation.Get(ctx, key)
	if isNotFound(err) {
		return nil, pkgerrors.NewReference("evaluation", key.String())
	}
	return evaluation, err
}

// exists 将 Get 类查询结果转换为 是否存在；查询失败时返回错误。
// 直接接收 Get 的两个返回值：exists(repo.Degree.GetByID(ctx, id))
func exists(_ any, err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case isNotFound(err):
		return false, nil
	default:
		return false, err
	}
}
