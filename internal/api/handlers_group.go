package api

import (
	"Warbler/internal/api/handler"
	"Warbler/internal/api/middleware"
	"Warbler/internal/service"
)

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	TweetHandler       *handler.TweetHandler
	TweetActionHandler *handler.TweetActionHandler
	UserHandler        *handler.UserHandler
	UserFollowHandler  *handler.UserFollowHandler
	MediaHandler       *handler.MediaHandler

	// 鉴权中间件查询 api-key
	UserService service.UserService
	// 为 nil 时不限流
	RateLimiter *middleware.RateLimiter
	CORSOrigins []string
}
