package service

import (
	"Warbler/internal/model"
	"Warbler/internal/repository"
	"context"
)

type TweetActionService interface {
	LikeTweet(ctx context.Context, userID, tweetID uint64) error
	UnlikeTweet(ctx context.Context, userID, tweetID uint64) error
}

type TweetActionServiceImpl struct {
	tweetRepo repository.TweetRepo
	likeRepo  repository.LikeRepo
}

func NewTweetActionService(tweetRepo repository.TweetRepo, likeRepo repository.LikeRepo) TweetActionService {
	return &TweetActionServiceImpl{
		tweetRepo: tweetRepo,
		likeRepo:  likeRepo,
	}
}

func (s *TweetActionServiceImpl) LikeTweet(ctx context.Context, userID, tweetID uint64) error {
	tweet, err := s.tweetRepo.GetTweet(ctx, tweetID)
	if err != nil {
		return err
	}
	if tweet == nil {
		return ErrTweetNotFound
	}

	created, err := s.likeRepo.CreateLike(ctx, &model.Like{TweetID: tweetID, UserID: userID})
	if err != nil {
		return err
	}
	if !created {
		return ErrLikeExist
	}

	InvalidateFeed(ctx)
	return nil
}

// UnlikeTweet 未点赞时同样返回成功
func (s *TweetActionServiceImpl) UnlikeTweet(ctx context.Context, userID, tweetID uint64) error {
	if err := s.likeRepo.DeleteLike(ctx, tweetID, userID); err != nil {
		return err
	}
	InvalidateFeed(ctx)
	return nil
}
