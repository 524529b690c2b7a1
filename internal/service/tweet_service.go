package service

import (
	"Warbler/internal/api/dto"
	"Warbler/internal/model"
	"Warbler/internal/repository"
	"context"
	log "log/slog"
)

type TweetService interface {
	CreateTweet(ctx context.Context, userID uint64, req *dto.TweetCreateDTO) (uint64, error)
	DeleteTweet(ctx context.Context, userID, tweetID uint64) error
}

type TweetServiceImpl struct {
	tweetRepo repository.TweetRepo
}

func NewTweetService(tweetRepo repository.TweetRepo) TweetService {
	return &TweetServiceImpl{tweetRepo: tweetRepo}
}

// CreateTweet 媒体 ID 原样保存，不要求已存在
func (s *TweetServiceImpl) CreateTweet(ctx context.Context, userID uint64, req *dto.TweetCreateDTO) (uint64, error) {
	attachments := req.TweetMediaIds
	if attachments == nil {
		attachments = []uint64{}
	}
	tweet := &model.Tweet{
		UserID:      userID,
		Content:     req.TweetData,
		Attachments: attachments,
	}
	if err := s.tweetRepo.CreateTweet(ctx, tweet); err != nil {
		return 0, err
	}

	InvalidateFeed(ctx)
	log.InfoContext(ctx, "tweet created", "tweet_id", tweet.ID, "user_id", userID)
	return tweet.ID, nil
}

// DeleteTweet 只能删除自己的推文，连同点赞一起删除
func (s *TweetServiceImpl) DeleteTweet(ctx context.Context, userID, tweetID uint64) error {
	tweet, err := s.tweetRepo.GetTweet(ctx, tweetID)
	if err != nil {
		return err
	}
	if tweet == nil || tweet.UserID != userID {
		return ErrTweetNotFound
	}
	if err = s.tweetRepo.DeleteTweet(ctx, tweetID); err != nil {
		return err
	}

	InvalidateFeed(ctx)
	log.InfoContext(ctx, "tweet deleted", "tweet_id", tweetID, "user_id", userID)
	return nil
}
