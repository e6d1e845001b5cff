package model

import (
	"fmt"
	"time"
)

// ── 学期 Term ──

// Term 学期季节；同一年内顺序为 Spring < Summer < Fall
type Term string

const (
	TermSpring Term = "Spring"
	TermSummer Term = "Summer"
	TermFall   Term = "Fall"
)

// Terms 按学年内先后顺序排列
var Terms = []Term{TermSpring, TermSummer, TermFall}

// Order 返回学年内序号（1-3），非法值返回 0
func (t Term) Order() int {
	switch t {
	case TermSpring:
		return 1
	case TermSummer:
		return 2
	case TermFall:
		return 3
	default:
		return 0
	}
}

// Valid 是否为合法学期季节
func (t Term) Valid() bool { return t.Order() > 0 }

// SemesterKey 学期主键 (year, term)
type SemesterKey struct {
	Year int  `json:"year"`
	Term Term `json:"term"`
}

// Compare 按时间先后比较：k 早于 o 返回 -1，相同返回 0，晚于返回 1
func (k SemesterKey) Compare(o SemesterKey) int {
	switch {
	case k.Year < o.Year:
		return -1
	case k.Year > o.Year:
		return 1
	case k.Term.Order() < o.Term.Order():
		return -1
	case k.Term.Order() > o.Term.Order():
		return 1
	default:
		return 0
	}
}

// Within 判断 k 是否落在闭区间 [start, end] 内
func (k SemesterKey) Within(start, end SemesterKey) bool {
	return k.Compare(start) >= 0 && k.Compare(end) <= 0
}

func (k SemesterKey) String() string {
	return fmt.Sprintf("%d %s", k.Year, k.Term)
}

// BaseModel 通用时间戳字段（所有业务模型嵌入）
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
