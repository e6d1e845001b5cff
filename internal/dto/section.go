package dto

// CreateSectionRequest 开设课程班级请求
type CreateSectionRequest struct {
	CourseNumber    string `json:"course_number"    binding:"required,course_number"`
	SectionID       string `json:"section_id"       binding:"required,section_id"`
	Year            int    `json:"year"             binding:"required,min=1000,max=9999"`
	Term            string `json:"term"             binding:"required,term"`
	InstructorID    string `json:"instructor_id"    binding:"required,instructor_id"`
	EnrollmentCount int    `json:"enrollment_count" binding:"min=0"`
}

// SectionResponse 班级信息
type SectionResponse struct {
	CourseNumber    string `json:"course_number"`
	SectionID       string `json:"section_id"`
	Year            int    `json:"year"`
	Term            string `json:"term"`
	InstructorID    string `json:"instructor_id"`
	EnrollmentCount int    `json:"enrollment_count"`
	// ProvisionedEvaluations 创建班级时自动生成的评估占位记录数
	ProvisionedEvaluations int64 `json:"provisioned_evaluations,omitempty"`
}

// SectionRangeQuery 按课程或教师查询某学期区间内的班级
type SectionRangeQuery struct {
	CourseNumber string `form:"course_number"`
	InstructorID string `form:"instructor_id"`
	StartYear    int    `form:"start_year" binding:"required"`
	StartTerm    string `form:"start_term" binding:"required"`
	EndYear      int    `form:"end_year"   binding:"required"`
	EndTerm      string `form:"end_term"   binding:"required"`
}
