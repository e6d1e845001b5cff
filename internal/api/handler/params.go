package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Keaton-Harvey/DatabasesProject/internal/model"
	rules "github.com/Keaton-Harvey/DatabasesProject/internal/validator"
)

// semesterParams 解析路径参数 :year/:term；失败时已写入响应，调用方直接 return
func semesterParams(c *gin.Context) (int, string, bool) {
	yearStr, term := c.Param("year"), c.Param("term")
	if err := rules.YearString(yearStr); err != nil {
		respondError(c, err)
		return 0, "", false
	}
	if err := rules.Term(term); err != nil {
		respondError(c, err)
		return 0, "", false
	}
	year, _ := strconv.Atoi(yearStr)
	return year, term, true
}

// sectionParams 解析路径参数 :course/:section/:year/:term
func sectionParams(c *gin.Context) (model.SectionKey, bool) {
	year, term, ok := semesterParams(c)
	if !ok {
		return model.SectionKey{}, false
	}
	return model.SectionKey{
		CourseNumber: c.Param("course"),
		SectionID:    c.Param("section"),
		Year:         year,
		Term:         model.Term(term),
	}, true
}
