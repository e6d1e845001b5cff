package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Keaton-Harvey/DatabasesProject/internal/dto"
	"github.com/Keaton-Harvey/DatabasesProject/internal/service"
	"github.com/Keaton-Harvey/DatabasesProject/pkg/response"
)

// EvaluationHandler 评估模块 HTTP 处理器
type EvaluationHandler struct {
	evaluationSvc service.EvaluationService
}

// NewEvaluationHandler 创建 EvaluationHandler
func NewEvaluationHandler(evaluationSvc service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evaluationSvc: evaluationSvc}
}

// UpdateEvaluation 录入/更新评估
// PUT /api/v1/evaluations
func (h *EvaluationHandler) UpdateEvaluation(c *gin.Context) {
	var req dto.UpdateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.evaluationSvc.Update(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}

// DuplicateEvaluation 将评估复制到课程关联的其他学位
// POST /api/v1/evaluations/duplicate
func (h *EvaluationHandler) DuplicateEvaluation(c *gin.Context) {
	var req dto.DuplicateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.evaluationSvc.Duplicate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}

// GetSemesterStatus 学期内全部班级的录入状态
// GET /api/v1/semesters/:year/:term/status
func (h *EvaluationHandler) GetSemesterStatus(c *gin.Context) {
	year, term, ok := semesterParams(c)
	if !ok {
		return
	}

	status, err := h.evaluationSvc.GetSemesterStatus(c.Request.Context(), year, term)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, status)
}
