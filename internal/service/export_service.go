package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Keaton-Harvey/DatabasesProject/internal/dto"
	"github.com/Keaton-Harvey/DatabasesProject/internal/model"
	"github.com/Keaton-Harvey/DatabasesProject/internal/repository"
	"github.com/Keaton-Harvey/DatabasesProject/internal/validator"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoSections   = errors.New("该学期暂无开设班级")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 导出以 bytes.Buffer 返回，由 Handler 层（或命令行）决定写入 HTTP 响应还是文件。
// 工作簿包含两个 Sheet：
//   - "录入状态"：每个班级一行汇总状态，其后每个 (学位, 目标) 一行明细
//   - "通过率"：通过率不低于阈值的评估行
type ExportService interface {
	// ExportSemester 导出学期评估报告；threshold 为 nil 时使用配置的默认阈值
	ExportSemester(ctx context.Context, year int, term string, threshold *float64) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo             *repository.Repository
	defaultThreshold float64
	logger           *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, defaultThreshold float64, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, defaultThreshold: defaultThreshold, logger: logger}
}

// ════════════════════════════════════════════════════════════
// ExportSemester 导出学期评估报告为 Excel
// ════════════════════════════════════════════════════════════
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportSemester(ctx context.Context, year int, term string, threshold *float64) (*bytes.Buffer, string, error) {
	term = strings.TrimSpace(term)
	limit := s.defaultThreshold
	if threshold != nil {
		limit = *threshold
	}
	if err := firstError(
		validator.Semester(year, term),
		validator.PassThreshold(limit),
	); err != nil {
		return nil, "", err
	}
	semester := model.SemesterKey{Year: year, Term: model.Term(term)}

	// 1. 查询学期数据
	if _, err := requireSemester(ctx, s.repo, semester); err != nil {
		logFailure(s.logger, "查询学期失败", err, zap.Stringer("semester", semester))
		return nil, "", err
	}
	sections, err := s.repo.Section.ListBySemester(ctx, semester)
	if err != nil {
		s.logger.Error("查询学期班级失败", zap.Stringer("semester", semester), zap.Error(err))
		return nil, "", err
	}
	if len(sections) == 0 {
		return nil, "", ErrExportNoSections
	}
	evaluations, err := s.repo.Evaluation.ListBySemester(ctx, semester)
	if err != nil {
		s.logger.Error("查询学期评估失败", zap.Stringer("semester", semester), zap.Error(err))
		return nil, "", err
	}

	// 2. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	if err := writeStatusSheet(f, semester, sections, evaluations, headerStyle); err != nil {
		s.logger.Error("写入状态表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	if err := writePassRateSheet(f, semester, passRates(sections, evaluations, limit), limit, headerStyle); err != nil {
		s.logger.Error("写入通过率表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(0)

	// 3. 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("assessment_%d_%s.xlsx", year, term)
	return buf, filename, nil
}

const (
	statusSheet   = "录入状态"
	passRateSheet = "通过率"
)

// writeStatusSheet 表头: | 课程 | 班级 | 教师 | 选课人数 | 学位 | 目标 | 状态 |
// 班级汇总行的学位、目标列留空
func writeStatusSheet(f *excelize.File, semester model.SemesterKey, sections []model.Section, evaluations []model.Evaluation, headerStyle int) error {
	if _, err := f.NewSheet(statusSheet); err != nil {
		return err
	}
	headers := []string{"课程", "班级", "教师", "选课人数", "学位", "目标", "状态"}
	if err := writeTitleAndHeader(f, statusSheet, fmt.Sprintf("%s 评估录入状态", semester), headers, headerStyle); err != nil {
		return err
	}
	f.SetColWidth(statusSheet, "A", "F", 12)
	f.SetColWidth(statusSheet, "G", "G", 40)

	row := 3
	for _, sec := range buildSemesterStatus(sections, evaluations) {
		values := []interface{}{sec.CourseNumber, sec.SectionID, sec.InstructorID, sec.EnrollmentCount, "", "", sec.Status}
		if err := f.SetSheetRow(statusSheet, cell("A", row), &values); err != nil {
			return err
		}
		row++
		for _, g := range sec.Goals {
			values := []interface{}{"", "", "", "", g.DegreeID, g.GoalCode, g.Status}
			if err := f.SetSheetRow(statusSheet, cell("A", row), &values); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

// writePassRateSheet 表头: | 课程 | 班级 | 教师 | 学位 | 目标 | 选课人数 | 通过人数 | 通过率(%) |
func writePassRateSheet(f *excelize.File, semester model.SemesterKey, rows []dto.PassRateResponse, threshold float64, headerStyle int) error {
	if _, err := f.NewSheet(passRateSheet); err != nil {
		return err
	}
	headers := []string{"课程", "班级", "教师", "学位", "目标", "选课人数", "通过人数", "通过率(%)"}
	title := fmt.Sprintf("%s 通过率 ≥ %.1f%%", semester, threshold)
	if err := writeTitleAndHeader(f, passRateSheet, title, headers, headerStyle); err != nil {
		return err
	}
	f.SetColWidth(passRateSheet, "A", "H", 12)

	row := 3
	for _, r := range rows {
		values := []interface{}{
			r.CourseNumber, r.SectionID, r.InstructorID, r.DegreeID, r.GoalCode,
			r.EnrollmentCount, r.PassCount, fmt.Sprintf("%.1f", r.PassRate),
		}
		if err := f.SetSheetRow(passRateSheet, cell("A", row), &values); err != nil {
			return err
		}
		row++
	}
	return nil
}

// writeTitleAndHeader 第 1 行为合并的标题，第 2 行为表头
func writeTitleAndHeader(f *excelize.File, sheet, title string, headers []string, headerStyle int) error {
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return err
	}
	last := colName(len(headers) - 1)
	if err := f.MergeCell(sheet, "A1", cell(last, 1)); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A2", &headers); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", cell(last, 2), headerStyle)
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
