package service

import (
	"Warbler/internal/api/dto"
	"Warbler/internal/model"
	"Warbler/internal/pkg/metrics"
	"Warbler/internal/pkg/redis"
	"Warbler/internal/repository"
	"context"
	log "log/slog"
	"sort"
	"time"

	"github.com/goccy/go-json"
)

// FeedService 全站 Feed：作者按粉丝数降序分组，组内推文按 id 升序
type FeedService interface {
	AssembleFeed(ctx context.Context) ([]*dto.TweetDTO, error)
}

type FeedServiceImpl struct {
	transactor repository.Transactor
	userRepo   repository.UserRepo
	tweetRepo  repository.TweetRepo
	followRepo repository.FollowRepo
	enricher   TweetEnrichService
	cacheTTL   time.Duration
}

func NewFeedService(
	transactor repository.Transactor,
	userRepo repository.UserRepo,
	tweetRepo repository.TweetRepo,
	followRepo repository.FollowRepo,
	enricher TweetEnrichService,
	cacheTTL time.Duration,
) FeedService {
	return &FeedServiceImpl{
		transactor: transactor,
		userRepo:   userRepo,
		tweetRepo:  tweetRepo,
		followRepo: followRepo,
		enricher:   enricher,
		cacheTTL:   cacheTTL,
	}
}

// authorGroup 一个作者及其推文
type authorGroup struct {
	user      *model.User
	followers int64
	tweets    []*model.Tweet
}

func (s *FeedServiceImpl) AssembleFeed(ctx context.Context) ([]*dto.TweetDTO, error) {
	key, cacheable := "", false
	if s.cacheTTL > 0 {
		key, cacheable = feedCacheKey(ctx)
	}
	if cacheable {
		if cached := s.getCachedFeed(ctx, key); cached != nil {
			metrics.IncFeedCache("hit")
			return cached, nil
		}
		metrics.IncFeedCache("miss")
	}

	start := time.Now()
	var feed []*dto.TweetDTO
	err := s.transactor.ReadSnapshot(ctx, func(ctx context.Context) error {
		users, err := s.userRepo.ListUsers(ctx)
		if err != nil {
			return err
		}
		counts, err := s.followRepo.GetFollowerCounts(ctx)
		if err != nil {
			return err
		}
		tweets, err := s.tweetRepo.ListTweets(ctx)
		if err != nil {
			return err
		}

		groups := rankAuthorGroups(users, counts, tweets)

		ordered := make([]*model.Tweet, 0, len(tweets))
		known := make(map[uint64]*model.User, len(groups))
		for _, g := range groups {
			ordered = append(ordered, g.tweets...)
			known[g.user.ID] = g.user
		}

		feed, err = s.enricher.Enrich(ctx, ordered, known)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.ObserveFeedAssemble(start, len(feed))
	if cacheable {
		s.setCachedFeed(ctx, key, feed)
	}
	return feed, nil
}

// rankAuthorGroups 按用户 id 升序枚举作者后稳定排序，粉丝数相同的作者保持 id 升序。
// 没有推文的用户不产生分组，作者已不存在的推文不会出现在 Feed 中
func rankAuthorGroups(users []*model.User, counts map[uint64]int64, tweets []*model.Tweet) []*authorGroup {
	byAuthor := make(map[uint64][]*model.Tweet, len(users))
	for _, t := range tweets {
		byAuthor[t.UserID] = append(byAuthor[t.UserID], t)
	}

	groups := make([]*authorGroup, 0, len(users))
	for _, u := range users {
		list := byAuthor[u.ID]
		if len(list) == 0 {
			continue
		}
		sort.SliceStable(list, func(i, j int) bool { return list[i].ID < list[j].ID })
		groups = append(groups, &authorGroup{
			user:      u,
			followers: counts[u.ID],
			tweets:    list,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].followers > groups[j].followers
	})
	return groups
}

func (s *FeedServiceImpl) getCachedFeed(ctx context.Context, key string) []*dto.TweetDTO {
	raw, err := redis.GetBytes(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "read feed cache failed", "err", err)
		return nil
	}
	if raw == nil {
		return nil
	}
	var feed []*dto.TweetDTO
	if err = json.Unmarshal(raw, &feed); err != nil {
		log.WarnContext(ctx, "decode feed cache failed", "err", err)
		return nil
	}
	return feed
}

func (s *FeedServiceImpl) setCachedFeed(ctx context.Context, key string, feed []*dto.TweetDTO) {
	raw, err := json.Marshal(feed)
	if err != nil {
		log.WarnContext(ctx, "encode feed cache failed", "err", err)
		return
	}
	if err = redis.SetWithExpiration(ctx, key, raw, s.cacheTTL); err != nil {
		log.WarnContext(ctx, "write feed cache failed", "err", err)
	}
}
