package middleware

import (
	"Warbler/internal/pkg/consts"
	"Warbler/internal/service"
	"context"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：识别成功注入 UID，失败或缺失则 UID 为 0
func AuthOptionalMiddleware(userService service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(consts.ApiKeyHeader)
		if apiKey == "" {
			c.Set(consts.CtxUserID, uint64(0))
			c.Next()
			return
		}

		user, err := userService.GetUserByApiKey(c.Request.Context(), apiKey)
		if err != nil {
			c.Set(consts.CtxUserID, uint64(0))
		} else {
			c.Set(consts.CtxUserID, user.ID)
			c.Set(consts.CtxUserName, user.Name)
			newCtx := context.WithValue(c.Request.Context(), consts.CtxUserID, user.ID)
			c.Request = c.Request.WithContext(newCtx)
		}

		c.Next()
	}
}
