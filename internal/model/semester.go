package model

// Semester 学期表，对应 semesters
type Semester struct {
	Year int  `gorm:"primaryKey;autoIncrement:false"    json:"year"`
	Term Term `gorm:"type:varchar(6);primaryKey"        json:"term"`
	BaseModel
}

// TableName 指定表名
func (Semester) TableName() string { return "semesters" }

// Key 返回学期主键
func (s *Semester) Key() SemesterKey {
	return SemesterKey{Year: s.Year, Term: s.Term}
}

const ConstraintSemesterPK = "semesters_pkey"
