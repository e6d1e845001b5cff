package dto

// PassRateResponse 通过率达到阈值的评估行
// PassRate = (A+B+C) / enrollment_count * 100
type PassRateResponse struct {
	CourseNumber    string  `json:"course_number"`
	SectionID       string  `json:"section_id"`
	Year            int     `json:"year"`
	Term            string  `json:"term"`
	InstructorID    string  `json:"instructor_id"`
	DegreeID        string  `json:"degree_id"`
	GoalCode        string  `json:"goal_code"`
	EnrollmentCount int     `json:"enrollment_count"`
	PassCount       int     `json:"pass_count"`
	PassRate        float64 `json:"pass_rate"`
}

// PassRateQuery 通过率报表查询参数
type PassRateQuery struct {
	Threshold *float64 `form:"threshold" binding:"omitempty,min=0,max=100"`
}

// CoursesForGoalsQuery 按目标查询课程
type CoursesForGoalsQuery struct {
	DegreeID  string   `form:"degree_id"`
	GoalCodes []string `form:"goal_code"`
}
