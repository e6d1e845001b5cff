package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Keaton-Harvey/DatabasesProject/config"
	"github.com/Keaton-Harvey/DatabasesProject/internal/api/handler"
	"github.com/Keaton-Harvey/DatabasesProject/internal/api/middleware"
	"github.com/Keaton-Harvey/DatabasesProject/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 为 nil 时写接口不限流
func Setup(cfg *config.Config, h *handler.Handler, db *gorm.DB, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimitKB << 10))

	// ── 健康检查 ──
	r.GET("/health", healthCheck(db))

	// 写接口限流
	write := func(c *gin.Context) { c.Next() }
	if cfg.RateLimit.Enabled {
		write = middleware.RateLimit(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window, logger)
	}

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 学位与学位目标
		degrees := v1.Group("/degrees")
		{
			degrees.GET("", h.Degree.ListDegrees)
			degrees.POST("", write, h.Degree.CreateDegree)
			degrees.GET("/:id/goals", h.Degree.ListGoals)
			degrees.POST("/:id/goals", write, h.Degree.AddGoal)
			degrees.GET("/:id/courses", h.Degree.ListCourses)
		}

		// 课程与课程-学位关联
		courses := v1.Group("/courses")
		{
			courses.GET("", h.Course.ListCourses)
			courses.POST("", write, h.Course.CreateCourse)
			courses.GET("/:number/degrees", h.Course.ListDegrees)
			courses.POST("/:number/degrees", write, h.Course.LinkDegree)
		}

		// 教师
		instructors := v1.Group("/instructors")
		{
			instructors.GET("", h.Instructor.ListInstructors)
			instructors.POST("", write, h.Instructor.CreateInstructor)
		}

		// 学期（含学期维度的状态、报表与导出）
		semesters := v1.Group("/semesters")
		{
			semesters.GET("", h.Semester.ListSemesters)
			semesters.POST("", write, h.Semester.CreateSemester)
			semesters.GET("/:year/:term/sections", h.Semester.ListSections)
			semesters.GET("/:year/:term/courses", h.Semester.ListAvailableCourses)
			semesters.GET("/:year/:term/status", h.Evaluation.GetSemesterStatus)
			semesters.GET("/:year/:term/pass-rate", h.Report.PassRate)
			semesters.GET("/:year/:term/export", h.Export.ExportSemester)
		}

		// 班级
		sections := v1.Group("/sections")
		{
			sections.POST("", write, h.Section.CreateSection)
			sections.GET("/:course/:section/:year/:term/evaluations", h.Section.ListEvaluations)
			sections.GET("/:course/:section/:year/:term/status", h.Section.GetStatus)
		}

		// 评估录入与复制
		evaluations := v1.Group("/evaluations")
		{
			evaluations.PUT("", write, h.Evaluation.UpdateEvaluation)
			evaluations.POST("/duplicate", write, h.Evaluation.DuplicateEvaluation)
		}

		// 跨实体查询
		reports := v1.Group("/reports")
		{
			reports.GET("/sections", h.Report.SectionsInRange)
			reports.GET("/courses-by-goal", h.Report.CoursesForGoals)
		}
	}

	return r
}

// healthCheck 检查数据库连通性；不可达时返回 503
func healthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
	}
}
