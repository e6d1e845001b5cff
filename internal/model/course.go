package model

// Course 课程表，对应 courses
type Course struct {
	CourseNumber string `gorm:"type:varchar(8);primaryKey"   json:"course_number"`
	Name         string `gorm:"type:varchar(100);not null"   json:"name"`
	BaseModel
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }

// CourseDegree 课程-学位关联表，对应 course_degrees
// IsCore 为 true 表示该课程是学位的必修课
type CourseDegree struct {
	CourseNumber string `gorm:"type:varchar(8);primaryKey"  json:"course_number"`
	DegreeID     string `gorm:"type:varchar(20);primaryKey" json:"degree_id"`
	IsCore       bool   `gorm:"not null"                    json:"is_core"`
	BaseModel
}

// TableName 指定表名
func (CourseDegree) TableName() string { return "course_degrees" }

const (
	ConstraintCoursePK       = "courses_pkey"
	ConstraintCourseDegreePK = "course_degrees_pkey"
)
