package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Keaton-Harvey/DatabasesProject/internal/dto"
	"github.com/Keaton-Harvey/DatabasesProject/internal/service"
	"github.com/Keaton-Harvey/DatabasesProject/pkg/response"
)

// SectionHandler 班级模块 HTTP 处理器
type SectionHandler struct {
	sectionSvc    service.SectionService
	evaluationSvc service.EvaluationService
}

// NewSectionHandler 创建 SectionHandler
func NewSectionHandler(sectionSvc service.SectionService, evaluationSvc service.EvaluationService) *SectionHandler {
	return &SectionHandler{sectionSvc: sectionSvc, evaluationSvc: evaluationSvc}
}

// CreateSection 开设班级（同时生成评估占位记录）
// POST /api/v1/sections
func (h *SectionHandler) CreateSection(c *gin.Context) {
	var req dto.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	section, err := h.sectionSvc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, section)
}

// ListEvaluations 班级的全部评估记录
// GET /api/v1/sections/:course/:section/:year/:term/evaluations
func (h *SectionHandler) ListEvaluations(c *gin.Context) {
	key, ok := sectionParams(c)
	if !ok {
		return
	}

	evaluations, err := h.evaluationSvc.ListBySection(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OKList(c, evaluations)
}

// GetStatus 班级录入状态
// GET /api/v1/sections/:course/:section/:year/:term/status
func (h *SectionHandler) GetStatus(c *gin.Context) {
	key, ok := sectionParams(c)
	if !ok {
		return
	}

	status, err := h.evaluationSvc.GetSectionStatus(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, status)
}
