package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Keaton-Harvey/DatabasesProject/internal/dto"
	"github.com/Keaton-Harvey/DatabasesProject/internal/service"
	"github.com/Keaton-Harvey/DatabasesProject/pkg/response"
)

// SemesterHandler 学期模块 HTTP 处理器
type SemesterHandler struct {
	semesterSvc service.SemesterService
	sectionSvc  service.SectionService
	reportSvc   service.ReportService
}

// NewSemesterHandler 创建 SemesterHandler
func NewSemesterHandler(semesterSvc service.SemesterService, sectionSvc service.SectionService, reportSvc service.ReportService) *SemesterHandler {
	return &SemesterHandler{semesterSvc: semesterSvc, sectionSvc: sectionSvc, reportSvc: reportSvc}
}

// ListSemesters 获取学期列表（按时间先后）
// GET /api/v1/semesters
func (h *SemesterHandler) ListSemesters(c *gin.Context) {
	semesters, err := h.semesterSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.OKList(c, semesters)
}

// CreateSemester 创建学期
// POST /api/v1/semesters
func (h *SemesterHandler) CreateSemester(c *gin.Context) {
	var req dto.CreateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	semester, err := h.semesterSvc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, semester)
}

// ListSections 学期内开设的班级
// GET /api/v1/semesters/:year/:term/sections
func (h *SemesterHandler) ListSections(c *gin.Context) {
	year, term, ok := semesterParams(c)
	if !ok {
		return
	}

	sections, err := h.sectionSvc.ListBySemester(c.Request.Context(), year, term)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OKList(c, sections)
}

// ListAvailableCourses 学期内至少开设一个班级的课程
// GET /api/v1/semesters/:year/:term/courses
func (h *SemesterHandler) ListAvailableCourses(c *gin.Context) {
	year, term, ok := semesterParams(c)
	if !ok {
		return
	}

	courses, err := h.reportSvc.AvailableCourses(c.Request.Context(), year, term)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OKList(c, courses)
}
