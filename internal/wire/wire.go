package wire

import (
	"Warbler/internal/api"
	"Warbler/internal/api/config"
	"Warbler/internal/api/handler"
	"Warbler/internal/api/middleware"
	"Warbler/internal/job"
	"Warbler/internal/pkg/cron"
	"Warbler/internal/pkg/kafka"
	"Warbler/internal/pkg/storage"
	"Warbler/internal/repository"
	"Warbler/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Services 业务服务集合，HTTP 服务与命令行工具共用
type Services struct {
	User        service.UserService
	Graph       service.GraphService
	Enrich      service.TweetEnrichService
	Feed        service.FeedService
	Profile     service.ProfileService
	Tweet       service.TweetService
	TweetAction service.TweetActionService
	Follow      service.FollowService
	Media       service.MediaService
}

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	Services     *Services
	CronMgr      *cron.Manager
	KafkaManager *kafka.ConsumerManager // 未启用 Kafka 时为 nil
}

// BuildServices store 为 nil 时媒体上传与清理返回 service.ErrStorageDisabled
func BuildServices(db *gorm.DB, store storage.BlobStore, cfg *config.Config) *Services {
	transactor := repository.NewTransactor(db)
	userRepo := repository.NewUserRepo(db)
	tweetRepo := repository.NewTweetRepo(db)
	likeRepo := repository.NewLikeRepo(db)
	followRepo := repository.NewFollowRepo(db)
	mediaRepo := repository.NewMediaRepo(db)

	graphService := service.NewGraphService(followRepo, userRepo)
	enrichService := service.NewTweetEnrichService(transactor, tweetRepo, userRepo, likeRepo, mediaRepo)

	return &Services{
		User:        service.NewUserService(userRepo),
		Graph:       graphService,
		Enrich:      enrichService,
		Feed:        service.NewFeedService(transactor, userRepo, tweetRepo, followRepo, enrichService, time.Duration(cfg.Feed.CacheTTL)*time.Second),
		Profile:     service.NewProfileService(transactor, userRepo, graphService),
		Tweet:       service.NewTweetService(tweetRepo),
		TweetAction: service.NewTweetActionService(tweetRepo, likeRepo),
		Follow:      service.NewFollowService(followRepo, userRepo),
		Media:       service.NewMediaService(mediaRepo, tweetRepo, store),
	}
}

func BuildApplication(db *gorm.DB, store storage.BlobStore, cfg *config.Config) (*ApplicationContainer, error) {
	services := BuildServices(db, store, cfg)

	handlers := &api.HandlersGroup{
		TweetHandler:       handler.NewTweetHandler(services.Feed, services.Enrich, services.Tweet),
		TweetActionHandler: handler.NewTweetActionHandler(services.TweetAction),
		UserHandler:        handler.NewUserHandler(services.Profile, services.Graph),
		UserFollowHandler:  handler.NewUserFollowHandler(services.Follow),
		MediaHandler:       handler.NewMediaHandler(services.Media),
		UserService:        services.User,
		CORSOrigins:        cfg.Server.CORSOrigins,
	}
	if cfg.RateLimit.Enable {
		handlers.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	router := api.SetupRouter(handlers)

	mediaCleanJob := job.NewMediaCleanupJob(services.Media, time.Duration(cfg.Cron.MediaOrphanTTL)*time.Hour)
	cronMgr := cron.NewCronManager(mediaCleanJob, cfg.Cron.MediaCleanSpec)

	var kafkaMgr *kafka.ConsumerManager
	if cfg.Kafka.Enable {
		var err error
		kafkaMgr, err = kafka.NewConsumerManager(cfg, service.NewRedisCacheInvalidator())
		if err != nil {
			return nil, err
		}
	}

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		Services:     services,
		CronMgr:      cronMgr,
		KafkaManager: kafkaMgr,
	}, nil
}
