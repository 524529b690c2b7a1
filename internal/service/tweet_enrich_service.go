package service

import (
	"Warbler/internal/api/dto"
	"Warbler/internal/model"
	"Warbler/internal/repository"
	"context"
	log "log/slog"
)

// TweetEnrichService 将存储中的推文补全为对外展示的结构
type TweetEnrichService interface {
	Enrich(ctx context.Context, tweets []*model.Tweet, known map[uint64]*model.User) ([]*dto.TweetDTO, error)
	EnrichOne(ctx context.Context, tweetID uint64) (*dto.TweetDTO, error)
}

type TweetEnrichServiceImpl struct {
	transactor repository.Transactor
	tweetRepo  repository.TweetRepo
	userRepo   repository.UserRepo
	likeRepo   repository.LikeRepo
	mediaRepo  repository.MediaRepo
}

func NewTweetEnrichService(
	transactor repository.Transactor,
	tweetRepo repository.TweetRepo,
	userRepo repository.UserRepo,
	likeRepo repository.LikeRepo,
	mediaRepo repository.MediaRepo,
) TweetEnrichService {
	return &TweetEnrichServiceImpl{
		transactor: transactor,
		tweetRepo:  tweetRepo,
		userRepo:   userRepo,
		likeRepo:   likeRepo,
		mediaRepo:  mediaRepo,
	}
}

// enrichSource 一批推文补全所需的全部数据
type enrichSource struct {
	users  map[uint64]*model.User
	likes  map[uint64][]*model.Like
	medias map[uint64]*model.Media
}

// Enrich 批量补全，known 为调用方已加载的用户，可为 nil
func (s *TweetEnrichServiceImpl) Enrich(
	ctx context.Context,
	tweets []*model.Tweet,
	known map[uint64]*model.User,
) ([]*dto.TweetDTO, error) {
	if len(tweets) == 0 {
		return []*dto.TweetDTO{}, nil
	}
	src, err := s.loadSource(ctx, tweets, known)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TweetDTO, 0, len(tweets))
	for _, t := range tweets {
		result = append(result, enrichTweet(ctx, t, src))
	}
	return result, nil
}

// EnrichOne 补全单条推文，推文不存在时返回 ErrTweetNotFound
func (s *TweetEnrichServiceImpl) EnrichOne(ctx context.Context, tweetID uint64) (*dto.TweetDTO, error) {
	var out *dto.TweetDTO
	err := s.transactor.ReadSnapshot(ctx, func(ctx context.Context) error {
		tweet, err := s.tweetRepo.GetTweet(ctx, tweetID)
		if err != nil {
			return err
		}
		if tweet == nil {
			return ErrTweetNotFound
		}
		list, err := s.Enrich(ctx, []*model.Tweet{tweet}, nil)
		if err != nil {
			return err
		}
		out = list[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *TweetEnrichServiceImpl) loadSource(
	ctx context.Context,
	tweets []*model.Tweet,
	known map[uint64]*model.User,
) (*enrichSource, error) {
	tweetIds := make([]uint64, 0, len(tweets))
	mediaIds := make([]uint64, 0)
	for _, t := range tweets {
		tweetIds = append(tweetIds, t.ID)
		mediaIds = append(mediaIds, t.Attachments...)
	}

	likes, err := s.likeRepo.GetLikesByTweetIds(ctx, tweetIds)
	if err != nil {
		return nil, err
	}

	src := &enrichSource{
		users:  make(map[uint64]*model.User, len(known)),
		likes:  make(map[uint64][]*model.Like, len(tweets)),
		medias: make(map[uint64]*model.Media),
	}
	for id, u := range known {
		src.users[id] = u
	}

	missing := make([]uint64, 0)
	for _, t := range tweets {
		if _, ok := src.users[t.UserID]; !ok {
			missing = append(missing, t.UserID)
		}
	}
	for _, l := range likes {
		src.likes[l.TweetID] = append(src.likes[l.TweetID], l)
		if _, ok := src.users[l.UserID]; !ok {
			missing = append(missing, l.UserID)
		}
	}
	if len(missing) > 0 {
		users, err := loadUsers(ctx, s.userRepo, missing)
		if err != nil {
			return nil, err
		}
		for id, u := range users {
			src.users[id] = u
		}
	}

	if len(mediaIds) > 0 {
		medias, err := s.mediaRepo.GetMediaByIds(ctx, uniqueIds(mediaIds))
		if err != nil {
			return nil, err
		}
		for _, m := range medias {
			src.medias[m.ID] = m
		}
	}
	return src, nil
}

// enrichTweet 纯函数，缺失的作者/点赞用户/媒体按降级规则处理
func enrichTweet(ctx context.Context, t *model.Tweet, src *enrichSource) *dto.TweetDTO {
	out := &dto.TweetDTO{
		ID:          t.ID,
		Content:     t.Content,
		Attachments: make([]*string, len(t.Attachments)),
		Likes:       make([]*dto.LikeDTO, 0, len(src.likes[t.ID])),
	}

	for i, mediaID := range t.Attachments {
		if m, ok := src.medias[mediaID]; ok {
			path := m.Path
			out.Attachments[i] = &path
		}
	}

	if author, ok := src.users[t.UserID]; ok {
		out.Author = toUserBrief(author)
	} else {
		log.WarnContext(ctx, "tweet author not found", "tweet_id", t.ID, "user_id", t.UserID)
	}

	for _, l := range src.likes[t.ID] {
		liker, ok := src.users[l.UserID]
		if !ok {
			continue
		}
		out.Likes = append(out.Likes, &dto.LikeDTO{UserID: liker.ID, Name: liker.Name})
	}
	return out
}
