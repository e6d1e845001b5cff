package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Keaton-Harvey/DatabasesProject/pkg/response"
)

const codeBodyTooLarge = 10005

// BodyLimit 请求体大小限制中间件
// 声明的 Content-Length 超限时直接拒绝；未声明长度的请求体由 MaxBytesReader 在读取时截断，
// 绑定阶段会得到 *http.MaxBytesError
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, codeBodyTooLarge, "请求体过大")
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
