package dto

// EvaluationKeyRequest 评估记录主键
type EvaluationKeyRequest struct {
	CourseNumber string `json:"course_number" binding:"required,course_number"`
	SectionID    string `json:"section_id"    binding:"required,section_id"`
	Year         int    `json:"year"          binding:"required,min=1000,max=9999"`
	Term         string `json:"term"          binding:"required,term"`
	DegreeID     string `json:"degree_id"     binding:"required"`
	GoalCode     string `json:"goal_code"     binding:"required,goal_code"`
}

// UpdateEvaluationRequest 录入/更新评估请求
// EvaluationType、ImprovementNote 为空表示未填写
type UpdateEvaluationRequest struct {
	EvaluationKeyRequest
	EvaluationType  *string `json:"evaluation_type"  binding:"omitempty,max=50"`
	GradeCountA     int     `json:"grade_count_a"    binding:"min=0"`
	GradeCountB     int     `json:"grade_count_b"    binding:"min=0"`
	GradeCountC     int     `json:"grade_count_c"    binding:"min=0"`
	GradeCountF     int     `json:"grade_count_f"    binding:"min=0"`
	ImprovementNote *string `json:"improvement_note"`
}

// DuplicateEvaluationRequest 将一条评估复制到课程关联的其他学位
// TargetDegreeIDs 为空时复制到全部其他关联学位
type DuplicateEvaluationRequest struct {
	EvaluationKeyRequest
	TargetDegreeIDs []string `json:"target_degree_ids"`
}

// EvaluationResponse 评估记录
type EvaluationResponse struct {
	CourseNumber    string  `json:"course_number"`
	SectionID       string  `json:"section_id"`
	Year            int     `json:"year"`
	Term            string  `json:"term"`
	DegreeID        string  `json:"degree_id"`
	GoalCode        string  `json:"goal_code"`
	EvaluationType  *string `json:"evaluation_type"`
	GradeCountA     int     `json:"grade_count_a"`
	GradeCountB     int     `json:"grade_count_b"`
	GradeCountC     int     `json:"grade_count_c"`
	GradeCountF     int     `json:"grade_count_f"`
	ImprovementNote *string `json:"improvement_note"`
	Status          string  `json:"status"`
}

// GoalStatusResponse 单个 (学位, 目标) 的录入状态
type GoalStatusResponse struct {
	DegreeID string `json:"degree_id"`
	GoalCode string `json:"goal_code"`
	Status   string `json:"status"`
}

// SectionStatusResponse 班级录入状态（汇总 + 各目标明细）
type SectionStatusResponse struct {
	CourseNumber    string               `json:"course_number"`
	SectionID       string               `json:"section_id"`
	Year            int                  `json:"year"`
	Term            string               `json:"term"`
	InstructorID    string               `json:"instructor_id"`
	EnrollmentCount int                  `json:"enrollment_count"`
	Status          string               `json:"status"`
	Goals           []GoalStatusResponse `json:"goals"`
}

// SemesterStatusResponse 学期内全部班级的录入状态
type SemesterStatusResponse struct {
	Year     int                     `json:"year"`
	Term     string                  `json:"term"`
	Sections []SectionStatusResponse `json:"sections"`
}

// UpdateEvaluationResponse 更新评估结果
// DuplicationCandidates 非空时由调用方决定是否复制到这些学位
type UpdateEvaluationResponse struct {
	Evaluation            EvaluationResponse    `json:"evaluation"`
	SectionStatus         SectionStatusResponse `json:"section_status"`
	DuplicationCandidates []string              `json:"duplication_candidates"`
}

// DuplicateEvaluationResponse 复制评估结果
type DuplicateEvaluationResponse struct {
	Updated       []EvaluationResponse  `json:"updated"`
	SectionStatus SectionStatusResponse `json:"section_status"`
}
