package middleware

import (
	"Warbler/internal/pkg/consts"
	"Warbler/internal/pkg/response"
	"Warbler/internal/service"
	"context"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 通过 api-key 请求头识别用户并将身份注入 Context
func AuthMiddleware(userService service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := userService.GetUserByApiKey(c.Request.Context(), c.GetHeader(consts.ApiKeyHeader))
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(consts.CtxUserID, user.ID)
		c.Set(consts.CtxUserName, user.Name)

		newCtx := context.WithValue(c.Request.Context(), consts.CtxUserID, user.ID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
