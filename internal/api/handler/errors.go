package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/Keaton-Harvey/DatabasesProject/pkg/errors"
	"github.com/Keaton-Harvey/DatabasesProject/pkg/response"
)

// ── 业务错误码 ──

const (
	codeBindFailed   = 10001
	codeBodyTooLarge = 10005
	codeValidation   = 20001
	codeReference    = 20002
	codeDuplicate    = 20003
	codeConsistency  = 20004
	codeNoSections   = 26101
	codeExportFailed = 26102
)

// respondError 将错误类别映射为 HTTP 状态码与业务码
func respondError(c *gin.Context, err error) {
	var (
		ve   *pkgerrors.ValidationError
		re   *pkgerrors.ReferenceError
		de   *pkgerrors.DuplicateError
		ce   *pkgerrors.ConsistencyError
		conn *pkgerrors.ConnectionError
	)
	switch {
	case errors.As(err, &ve):
		response.ErrorWithDetails(c, http.StatusBadRequest, codeValidation, ve.Error(),
			gin.H{"field": ve.Field, "reason": ve.Reason})
	case errors.As(err, &re):
		response.ErrorWithDetails(c, http.StatusNotFound, codeReference, re.Error(),
			gin.H{"entity": re.Entity, "key": re.Key})
	case errors.As(err, &de):
		response.ErrorWithDetails(c, http.StatusConflict, codeDuplicate, de.Error(),
			gin.H{"entity": de.Entity, "constraint": de.Constraint})
	case errors.As(err, &ce):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, codeConsistency, ce.Error(),
			gin.H{"expected": ce.Expected, "actual": ce.Actual})
	case errors.As(err, &conn), errors.Is(err, pkgerrors.ErrConnection):
		response.ServiceUnavailable(c)
	default:
		response.InternalError(c)
	}
}

// respondBindError 请求体/查询参数绑定失败，逐字段列出未通过的规则
func respondBindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.Error(c, http.StatusRequestEntityTooLarge, codeBodyTooLarge, "请求体过大")
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		response.BadRequest(c, codeBindFailed, "参数校验失败")
		return
	}
	fields := make([]gin.H, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, gin.H{"field": fe.Field(), "rule": fe.Tag()})
	}
	response.ErrorWithDetails(c, http.StatusBadRequest, codeBindFailed, "参数校验失败", fields)
}
