package api

import (
	"Warbler/internal/api/middleware"
	"Warbler/internal/pkg/logger"
	"Warbler/internal/pkg/metrics"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS & Metrics
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware(group.CORSOrigins))
	r.Use(metrics.Middleware())
	logger.SetupGin(r)

	r.GET("/metrics", metrics.Handler())

	apiGroup := r.Group("/api")
	if group.RateLimiter != nil {
		apiGroup.Use(group.RateLimiter.Middleware())
	}
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"result": true, "message": "pong"})
		})

		auth := middleware.AuthMiddleware(group.UserService)
		authOpt := middleware.AuthOptionalMiddleware(group.UserService)

		tweetGroup := apiGroup.Group("/tweets")
		{
			authOptGroup := tweetGroup.Group("")
			authOptGroup.Use(authOpt)
			{
				authOptGroup.GET("", group.TweetHandler.GetFeed)
				authOptGroup.GET("/:tweet_id", group.TweetHandler.GetTweet)
			}

			authGroup := tweetGroup.Group("")
			authGroup.Use(auth)
			{
				authGroup.POST("", group.TweetHandler.CreateTweet)
				authGroup.DELETE("/:tweet_id", group.TweetHandler.DeleteTweet)
				authGroup.POST("/:tweet_id/likes", group.TweetActionHandler.LikeTweet)
				authGroup.DELETE("/:tweet_id/likes", group.TweetActionHandler.UnlikeTweet)
			}
		}

		mediaGroup := apiGroup.Group("/medias")
		mediaGroup.Use(auth)
		{
			mediaGroup.POST("", group.MediaHandler.Upload)
		}

		userGroup := apiGroup.Group("/users")
		{
			authGroup := userGroup.Group("")
			authGroup.Use(auth)
			{
				authGroup.GET("/me", group.UserHandler.GetMe)
				authGroup.POST("/:user_id/follow", group.UserFollowHandler.Follow)
				authGroup.DELETE("/:user_id/follow", group.UserFollowHandler.Unfollow)
			}

			authOptGroup := userGroup.Group("")
			authOptGroup.Use(authOpt)
			{
				authOptGroup.GET("/:user_id", group.UserHandler.GetProfile)
				authOptGroup.GET("/:user_id/followers/count", group.UserHandler.GetFollowerCount)
			}
		}
	}

	return r
}
