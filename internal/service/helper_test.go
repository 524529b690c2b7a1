package service

import (
	"Warbler/internal/api/config"
	"Warbler/internal/model"
	"Warbler/internal/pkg/database"
	"Warbler/internal/repository"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testEnv 基于临时 SQLite 文件的完整服务集合，Redis 默认不启用，需要缓存的用例调用 useRedis
type testEnv struct {
	ctx        context.Context
	db         *gorm.DB
	userRepo   repository.UserRepo
	tweetRepo  repository.TweetRepo
	likeRepo   repository.LikeRepo
	followRepo repository.FollowRepo
	mediaRepo  repository.MediaRepo

	graph   GraphService
	enrich  TweetEnrichService
	feed    FeedService
	profile ProfileService
	tweets  TweetService
	actions TweetActionService
	follows FollowService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.NewGormDB(&config.DBConfig{
		Driver:   database.DriverSQLite,
		DSN:      filepath.Join(t.TempDir(), "warbler.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(context.Background(), db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	e := &testEnv{
		ctx:        context.Background(),
		db:         db,
		userRepo:   repository.NewUserRepo(db),
		tweetRepo:  repository.NewTweetRepo(db),
		likeRepo:   repository.NewLikeRepo(db),
		followRepo: repository.NewFollowRepo(db),
		mediaRepo:  repository.NewMediaRepo(db),
	}
	transactor := repository.NewTransactor(db)
	e.graph = NewGraphService(e.followRepo, e.userRepo)
	e.enrich = NewTweetEnrichService(transactor, e.tweetRepo, e.userRepo, e.likeRepo, e.mediaRepo)
	e.feed = NewFeedService(transactor, e.userRepo, e.tweetRepo, e.followRepo, e.enrich, time.Minute)
	e.profile = NewProfileService(transactor, e.userRepo, e.graph)
	e.tweets = NewTweetService(e.tweetRepo)
	e.actions = NewTweetActionService(e.tweetRepo, e.likeRepo)
	e.follows = NewFollowService(e.followRepo, e.userRepo)
	return e
}

func (e *testEnv) user(t *testing.T, name string) *model.User {
	t.Helper()
	u := &model.User{Name: name, ApiKey: name + "-key"}
	require.NoError(t, e.userRepo.CreateUser(e.ctx, u))
	return u
}

func (e *testEnv) tweet(t *testing.T, author *model.User, content string, mediaIds ...uint64) *model.Tweet {
	t.Helper()
	if mediaIds == nil {
		mediaIds = []uint64{}
	}
	tw := &model.Tweet{UserID: author.ID, Content: content, Attachments: mediaIds}
	require.NoError(t, e.tweetRepo.CreateTweet(e.ctx, tw))
	return tw
}

func (e *testEnv) follow(t *testing.T, follower, followed *model.User) {
	t.Helper()
	require.NoError(t, e.follows.Follow(e.ctx, follower.ID, followed.ID))
}

func (e *testEnv) like(t *testing.T, liker *model.User, tw *model.Tweet) {
	t.Helper()
	require.NoError(t, e.actions.LikeTweet(e.ctx, liker.ID, tw.ID))
}
