package dto

// ── 学位 / 目标 ──

// CreateDegreeRequest 创建学位请求
type CreateDegreeRequest struct {
	DegreeID string `json:"degree_id" binding:"required,max=20"`
	Name     string `json:"name"      binding:"required,max=100"`
	Level    string `json:"level"     binding:"required,degree_level"`
}

// DegreeResponse 学位信息
type DegreeResponse struct {
	DegreeID string `json:"degree_id"`
	Name     string `json:"name"`
	Level    string `json:"level"`
}

// CreateGoalRequest 创建学位目标请求
type CreateGoalRequest struct {
	DegreeID    string `json:"degree_id"   binding:"required"`
	GoalCode    string `json:"goal_code"   binding:"required,goal_code"`
	Description string `json:"description" binding:"required"`
}

// GoalResponse 学位目标信息
type GoalResponse struct {
	DegreeID    string `json:"degree_id"`
	GoalCode    string `json:"goal_code"`
	Description string `json:"description"`
	// ProvisionedEvaluations 为已有班级补建的评估占位记录数（仅创建时返回）
	ProvisionedEvaluations int64 `json:"provisioned_evaluations,omitempty"`
}

// ── 课程 / 课程-学位关联 ──

// CreateCourseRequest 创建课程请求
type CreateCourseRequest struct {
	CourseNumber string `json:"course_number" binding:"required,course_number"`
	Name         string `json:"name"          binding:"required,max=100"`
}

// CourseResponse 课程信息
type CourseResponse struct {
	CourseNumber string `json:"course_number"`
	Name         string `json:"name"`
}

// CreateCourseDegreeRequest 课程关联学位请求
type CreateCourseDegreeRequest struct {
	CourseNumber string `json:"course_number" binding:"required,course_number"`
	DegreeID     string `json:"degree_id"     binding:"required"`
	IsCore       bool   `json:"is_core"`
}

// CourseDegreeResponse 课程-学位关联信息
type CourseDegreeResponse struct {
	CourseNumber           string `json:"course_number"`
	DegreeID               string `json:"degree_id"`
	IsCore                 bool   `json:"is_core"`
	ProvisionedEvaluations int64  `json:"provisioned_evaluations"`
}

// ── 教师 ──

// CreateInstructorRequest 创建教师请求
type CreateInstructorRequest struct {
	InstructorID string `json:"instructor_id" binding:"required,instructor_id"`
	Name         string `json:"name"          binding:"required,max=100"`
}

// InstructorResponse 教师信息
type InstructorResponse struct {
	InstructorID string `json:"instructor_id"`
	Name         string `json:"name"`
}

// ── 学期 ──

// CreateSemesterRequest 创建学期请求
type CreateSemesterRequest struct {
	Year int    `json:"year" binding:"required,min=1000,max=9999"`
	Term string `json:"term" binding:"required,term"`
}

// SemesterResponse 学期信息
type SemesterResponse struct {
	Year int    `json:"year"`
	Term string `json:"term"`
}
