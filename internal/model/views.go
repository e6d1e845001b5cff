package model

// ── 只读查询投影（报表用） ──

// DegreeCourse 学位下的课程及其必修标记
type DegreeCourse struct {
	CourseNumber string `json:"course_number"`
	Name         string `json:"name"`
	IsCore       bool   `json:"is_core"`
}

// CourseDegreeDetail 课程所属的学位
type CourseDegreeDetail struct {
	DegreeID   string      `json:"degree_id"`
	DegreeName string      `json:"degree_name"`
	Level      DegreeLevel `json:"level"`
	IsCore     bool        `json:"is_core"`
}

// CourseGoal 课程 × 学位目标
type CourseGoal struct {
	CourseNumber string `json:"course_number"`
	CourseName   string `json:"course_name"`
	DegreeID     string `json:"degree_id"`
	GoalCode     string `json:"goal_code"`
	IsCore       bool   `json:"is_core"`
}
