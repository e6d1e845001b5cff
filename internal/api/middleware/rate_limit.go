package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Keaton-Harvey/DatabasesProject/pkg/redis"
	"github.com/Keaton-Harvey/DatabasesProject/pkg/response"
)

const codeTooManyRequests = 10004

// RateLimit 写接口限流中间件（Redis 滑动窗口）
// 按 客户端 IP + 方法 + 路由 计数；rdb 为 nil 或 Redis 出错时降级放行
func RateLimit(rdb *redis.Client, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s:%s", c.ClientIP(), c.Request.Method, c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.Warn("限流检查失败，降级放行",
				zap.String("request_id", GetRequestID(c)),
				zap.String("key", key),
				zap.Error(err),
			)
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			response.Error(c, http.StatusTooManyRequests, codeTooManyRequests, "写入过于频繁，请稍后再试")
			c.Abort()
			return
		}

		c.Next()
	}
}
