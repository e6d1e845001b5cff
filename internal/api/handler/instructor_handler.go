package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Keaton-Harvey/DatabasesProject/internal/dto"
	"github.com/Keaton-Harvey/DatabasesProject/internal/service"
	"github.com/Keaton-Harvey/DatabasesProject/pkg/response"
)

// InstructorHandler 教师模块 HTTP 处理器
type InstructorHandler struct {
	instructorSvc service.InstructorService
}

// NewInstructorHandler 创建 InstructorHandler
func NewInstructorHandler(instructorSvc service.InstructorService) *InstructorHandler {
	return &InstructorHandler{instructorSvc: instructorSvc}
}

// ListInstructors 获取教师列表
// GET /api/v1/instructors
func (h *InstructorHandler) ListInstructors(c *gin.Context) {
	instructors, err := h.instructorSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.OKList(c, instructors)
}

// CreateInstructor 创建教师
// POST /api/v1/instructors
func (h *InstructorHandler) CreateInstructor(c *gin.Context) {
	var req dto.CreateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	instructor, err := h.instructorSvc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, instructor)
}
