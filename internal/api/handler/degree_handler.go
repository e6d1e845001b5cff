package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Keaton-Harvey/DatabasesProject/internal/dto"
	"github.com/Keaton-Harvey/DatabasesProject/internal/service"
	"github.com/Keaton-Harvey/DatabasesProject/pkg/response"
)

// DegreeHandler 学位模块 HTTP 处理器
type DegreeHandler struct {
	degreeSvc service.DegreeService
	reportSvc service.ReportService
}

// NewDegreeHandler 创建 DegreeHandler
func NewDegreeHandler(degreeSvc service.DegreeService, reportSvc service.ReportService) *DegreeHandler {
	return &DegreeHandler{degreeSvc: degreeSvc, reportSvc: reportSvc}
}

// ListDegrees 获取学位列表
// GET /api/v1/degrees
func (h *DegreeHandler) ListDegrees(c *gin.Context) {
	degrees, err := h.degreeSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.OKList(c, degrees)
}

// CreateDegree 创建学位
// POST /api/v1/degrees
func (h *DegreeHandler) CreateDegree(c *gin.Context) {
	var req dto.CreateDegreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	degree, err := h.degreeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, degree)
}

// ListGoals 获取学位目标列表
// GET /api/v1/degrees/:id/goals
func (h *DegreeHandler) ListGoals(c *gin.Context) {
	goals, err := h.degreeSvc.ListGoals(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.OKList(c, goals)
}

// AddGoal 新增学位目标（学位编号取自路径）
// POST /api/v1/degrees/:id/goals
func (h *DegreeHandler) AddGoal(c *gin.Context) {
	req := dto.CreateGoalRequest{DegreeID: c.Param("id")}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	req.DegreeID = c.Param("id")

	goal, err := h.degreeSvc.AddGoal(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, goal)
}

// ListCourses 学位关联的课程（含必修标记）
// GET /api/v1/degrees/:id/courses
func (h *DegreeHandler) ListCourses(c *gin.Context) {
	courses, err := h.reportSvc.DegreeCourses(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.OKList(c, courses)
}
