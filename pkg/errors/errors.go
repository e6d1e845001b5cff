package errors

import (
	"errors"
	"fmt"
)

// ── 错误类别（供 errors.Is 判断） ──

var (
	ErrValidation  = errors.New("输入校验失败")
	ErrReference   = errors.New("引用的记录不存在")
	ErrDuplicate   = errors.New("记录已存在")
	ErrConsistency = errors.New("数据一致性校验失败")
	ErrConnection  = errors.New("数据库不可用")
)

// ValidationError 字段格式/范围/枚举校验失败，不会到达存储层
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidation 创建字段校验错误
func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ReferenceError 被引用的实体不存在
type ReferenceError struct {
	Entity string
	Key    string
}

// NewReference 创建引用错误
func NewReference(entity, key string) *ReferenceError {
	return &ReferenceError{Entity: entity, Key: key}
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s 不存在: %s", e.Entity, e.Key)
}

func (e *ReferenceError) Is(target error) bool { return target == ErrReference }

// DuplicateError 违反唯一约束；Constraint 区分具体约束（如 degrees_pkey / uq_degrees_name_level）
type DuplicateError struct {
	Entity     string
	Constraint string
}

// NewDuplicate 创建重复记录错误
func NewDuplicate(entity, constraint string) *DuplicateError {
	return &DuplicateError{Entity: entity, Constraint: constraint}
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s 已存在（约束 %s）", e.Entity, e.Constraint)
}

func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

// ConsistencyError 成绩人数之和与选课人数不一致
type ConsistencyError struct {
	Expected int
	Actual   int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("成绩人数之和 %d 与选课人数 %d 不一致", e.Actual, e.Expected)
}

func (e *ConsistencyError) Is(target error) bool { return target == ErrConsistency }

// ConnectionError 存储不可达。所有写操作失败即关闭，不自动重试
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s: 数据库不可用: %v", e.Op, e.Err)
}

func (e *ConnectionError) Is(target error) bool { return target == ErrConnection }

func (e *ConnectionError) Unwrap() error { return e.Err }
