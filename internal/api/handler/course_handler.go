package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Keaton-Harvey/DatabasesProject/internal/dto"
	"github.com/Keaton-Harvey/DatabasesProject/internal/service"
	"github.com/Keaton-Harvey/DatabasesProject/pkg/response"
)

// CourseHandler 课程模块 HTTP 处理器
type CourseHandler struct {
	courseSvc service.CourseService
	reportSvc service.ReportService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService, reportSvc service.ReportService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc, reportSvc: reportSvc}
}

// ListCourses 获取课程列表
// GET /api/v1/courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.OKList(c, courses)
}

// CreateCourse 创建课程
// POST /api/v1/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	course, err := h.courseSvc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, course)
}

// ListDegrees 课程所属学位
// GET /api/v1/courses/:number/degrees
func (h *CourseHandler) ListDegrees(c *gin.Context) {
	degrees, err := h.reportSvc.DegreesForCourse(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.OKList(c, degrees)
}

// LinkDegree 课程关联学位（课程编号取自路径）
// POST /api/v1/courses/:number/degrees
func (h *CourseHandler) LinkDegree(c *gin.Context) {
	req := dto.CreateCourseDegreeRequest{CourseNumber: c.Param("number")}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	req.CourseNumber = c.Param("number")

	link, err := h.courseSvc.LinkDegree(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, link)
}
