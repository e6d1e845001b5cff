package model

// Instructor 授课教师表，对应 instructors
type Instructor struct {
	InstructorID string `gorm:"type:char(8);primaryKey"    json:"instructor_id"`
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	BaseModel
}

// TableName 指定表名
func (Instructor) TableName() string { return "instructors" }

const ConstraintInstructorPK = "instructors_pkey"
