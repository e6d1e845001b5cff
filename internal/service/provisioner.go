package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Keaton-Harvey/DatabasesProject/internal/model"
	"github.com/Keaton-Harvey/DatabasesProject/internal/repository"
)

// Provisioner 为班级生成评估占位记录：
// 班级所属课程关联的每个学位 × 该学位的每个目标，各一条全零记录。
//
// 调用方须传入事务内的 Repository，使班级与占位记录同时提交或同时回滚。
// 已存在的记录不会被覆盖，重复执行不会产生重复行。
type Provisioner struct {
	logger *zap.Logger
}

// NewProvisioner 创建 Provisioner
func NewProvisioner(logger *zap.Logger) *Provisioner {
	return &Provisioner{logger: logger}
}

// ProvisionSection 为单个班级补齐占位记录，返回新建行数
func (p *Provisioner) ProvisionSection(ctx context.Context, tx *repository.Repository, section model.SectionKey) (int64, error) {
	return p.provision(ctx, tx, []model.SectionKey{section})
}

// ProvisionSections 为一批班级补齐占位记录（新增课程-学位关联或学位目标后的回填）
func (p *Provisioner) ProvisionSections(ctx context.Context, tx *repository.Repository, sections []model.Section) (int64, error) {
	keys := make([]model.SectionKey, 0, len(sections))
	for i := range sections {
		keys = append(keys, sections[i].Key())
	}
	return p.provision(ctx, tx, keys)
}

func (p *Provisioner) provision(ctx context.Context, tx *repository.Repository, sections []model.SectionKey) (int64, error) {
	if len(sections) == 0 {
		return 0, nil
	}

	links := make(map[string][]model.CourseDegree)
	goals := make(map[string][]model.Goal)

	var placeholders []model.Evaluation
	for _, section := range sections {
		courseLinks, ok := links[section.CourseNumber]
		if !ok {
			var err error
			courseLinks, err = tx.CourseDegree.ListByCourse(ctx, section.CourseNumber)
			if err != nil {
				return 0, err
			}
			links[section.CourseNumber] = courseLinks
		}

		for _, link := range courseLinks {
			degreeGoals, ok := goals[link.DegreeID]
			if !ok {
				var err error
				degreeGoals, err = tx.Goal.ListByDegree(ctx, link.DegreeID)
				if err != nil {
					return 0, err
				}
				goals[link.DegreeID] = degreeGoals
			}
			for _, goal := range degreeGoals {
				placeholders = append(placeholders, model.NewPlaceholderEvaluation(section, link.DegreeID, goal.GoalCode))
			}
		}
	}

	if len(placeholders) == 0 {
		return 0, nil
	}

	created, err := tx.Evaluation.CreateIfAbsent(ctx, placeholders)
	if err != nil {
		return 0, err
	}

	p.logger.Debug("评估占位记录已生成",
		zap.Int("sections", len(sections)),
		zap.Int("candidates", len(placeholders)),
		zap.Int64("created", created),
	)
	return created, nil
}
