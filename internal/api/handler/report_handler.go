package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Keaton-Harvey/DatabasesProject/internal/dto"
	"github.com/Keaton-Harvey/DatabasesProject/internal/service"
	"github.com/Keaton-Harvey/DatabasesProject/pkg/response"
)

// ReportHandler 报表模块 HTTP 处理器
type ReportHandler struct {
	reportSvc        service.ReportService
	defaultThreshold float64
}

// NewReportHandler 创建 ReportHandler
func NewReportHandler(reportSvc service.ReportService, defaultThreshold float64) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc, defaultThreshold: defaultThreshold}
}

// CoursesForGoals 按学位目标查询课程
// GET /api/v1/reports/courses-by-goal?degree_id=BSCS&goal_code=G001&goal_code=G002
func (h *ReportHandler) CoursesForGoals(c *gin.Context) {
	var query dto.CoursesForGoalsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	rows, err := h.reportSvc.CoursesForGoals(c.Request.Context(), query.DegreeID, query.GoalCodes)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OKList(c, rows)
}

// SectionsInRange 按课程或教师查询学期区间内的班级
// GET /api/v1/reports/sections?course_number=CS1010&start_year=2024&start_term=Fall&end_year=2025&end_term=Spring
func (h *ReportHandler) SectionsInRange(c *gin.Context) {
	var query dto.SectionRangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	sections, err := h.reportSvc.SectionsInRange(c.Request.Context(), &query)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OKList(c, sections)
}

// PassRate 通过率不低于阈值的评估行；未指定阈值时使用配置的默认值
// GET /api/v1/semesters/:year/:term/pass-rate?threshold=70
func (h *ReportHandler) PassRate(c *gin.Context) {
	year, term, ok := semesterParams(c)
	if !ok {
		return
	}
	var query dto.PassRateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}
	threshold := h.defaultThreshold
	if query.Threshold != nil {
		threshold = *query.Threshold
	}

	rows, err := h.reportSvc.SectionsAboveThreshold(c.Request.Context(), year, term, threshold)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, gin.H{"threshold": threshold, "list": rows})
}
