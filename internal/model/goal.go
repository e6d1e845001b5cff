package model

// Goal 学位培养目标表，对应 goals
// goal_code 仅在所属学位内唯一
type Goal struct {
	DegreeID    string `gorm:"type:varchar(20);primaryKey" json:"degree_id"`
	GoalCode    string `gorm:"type:char(4);primaryKey"     json:"goal_code"`
	Description string `gorm:"type:text;not null"          json:"description"`
	BaseModel
}

// TableName 指定表名
func (Goal) TableName() string { return "goals" }

const ConstraintGoalPK = "goals_pkey"
