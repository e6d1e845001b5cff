package model

// DegreeLevel 学位层次
type DegreeLevel string

const (
	LevelBA   DegreeLevel = "BA"
	LevelBS   DegreeLevel = "BS"
	LevelMS   DegreeLevel = "MS"
	LevelPhD  DegreeLevel = "Ph.D."
	LevelCert DegreeLevel = "Cert"
)

// DegreeLevels 全部合法学位层次
var DegreeLevels = []DegreeLevel{LevelBA, LevelBS, LevelMS, LevelPhD, LevelCert}

// Degree 学位项目表，对应 degrees
// (name, level) 组合唯一，与 degree_id 唯一是两条不同约束
type Degree struct {
	DegreeID string      `gorm:"type:varchar(20);primaryKey"                              json:"degree_id"`
	Name     string      `gorm:"type:varchar(100);not null;uniqueIndex:uq_degrees_name_level" json:"name"`
	Level    DegreeLevel `gorm:"type:varchar(10);not null;uniqueIndex:uq_degrees_name_level"  json:"level"`
	BaseModel
}

// TableName 指定表名
func (Degree) TableName() string { return "degrees" }

// 约束名与迁移文件保持一致，用于区分重复错误
const (
	ConstraintDegreeID        = "degrees_pkey"
	ConstraintDegreeNameLevel = "uq_degrees_name_level"
)
