package middleware

import (
	"Warbler/internal/pkg/logger"
	"context"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const TraceHeader = "X-Trace-ID"

// 调用方传入的 trace id 只接受短的字母数字串，其他值重新生成
var traceIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceHeader)
		if !traceIDPattern.MatchString(traceID) {
			traceID = uuid.NewString()
		}

		c.Set(logger.TraceIDKey, traceID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.TraceIDKey, traceID))
		c.Header(TraceHeader, traceID)

		c.Next()
	}
}
