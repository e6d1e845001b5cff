package model

import "fmt"

// SectionKey 课程班级主键 (course_number, section_id, year, term)
type SectionKey struct {
	CourseNumber string `json:"course_number"`
	SectionID    string `json:"section_id"`
	Year         int    `json:"year"`
	Term         Term   `json:"term"`
}

// Semester 返回所属学期
func (k SectionKey) Semester() SemesterKey {
	return SemesterKey{Year: k.Year, Term: k.Term}
}

func (k SectionKey) String() string {
	return fmt.Sprintf("%s/%s/%d/%s", k.CourseNumber, k.SectionID, k.Year, k.Term)
}

// Section 课程班级表，对应 sections
type Section struct {
	CourseNumber    string `gorm:"type:varchar(8);primaryKey"                      json:"course_number"`
	SectionID       string `gorm:"type:char(3);primaryKey"                         json:"section_id"`
	Year            int    `gorm:"primaryKey;autoIncrement:false;index:idx_sections_semester" json:"year"`
	Term            Term   `gorm:"type:varchar(6);primaryKey;index:idx_sections_semester"     json:"term"`
	InstructorID    string `gorm:"type:char(8);not null;index:idx_sections_instructor"        json:"instructor_id"`
	EnrollmentCount int    `gorm:"not null"                                        json:"enrollment_count"`
	BaseModel
}

// TableName 指定表名
func (Section) TableName() string { return "sections" }

// Key 返回班级主键
func (s *Section) Key() SectionKey {
	return SectionKey{CourseNumber: s.CourseNumber, SectionID: s.SectionID, Year: s.Year, Term: s.Term}
}

const ConstraintSectionPK = "sections_pkey"
