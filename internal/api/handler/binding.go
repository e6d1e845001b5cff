package handler

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	rules "github.com/Keaton-Harvey/DatabasesProject/internal/validator"
)

// customRules 请求绑定使用的自定义校验标签，与服务层使用同一套字段规则
var customRules = map[string]func(string) error{
	"course_number": rules.CourseNumber,
	"instructor_id": rules.InstructorID,
	"goal_code":     rules.GoalCode,
	"term":          rules.Term,
	"degree_level":  rules.DegreeLevel,
	"section_id":    rules.SectionID,
}

// RegisterValidators 向 gin 的 validator 引擎注册自定义标签，启动时调用一次
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("gin 校验引擎不是 validator/v10")
	}
	for tag, rule := range customRules {
		rule := rule
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return rule(fl.Field().String()) == nil
		})
		if err != nil {
			return fmt.Errorf("注册校验标签 %s 失败: %w", tag, err)
		}
	}
	return nil
}
