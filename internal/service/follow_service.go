package service

import (
	"Warbler/internal/model"
	"Warbler/internal/repository"
	"context"
)

// FollowService 关注关系写操作，允许关注自己
type FollowService interface {
	Follow(ctx context.Context, followerID, followedID uint64) error
	Unfollow(ctx context.Context, followerID, followedID uint64) error
}

type FollowServiceImpl struct {
	followRepo repository.FollowRepo
	userRepo   repository.UserRepo
}

func NewFollowService(followRepo repository.FollowRepo, userRepo repository.UserRepo) FollowService {
	return &FollowServiceImpl{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

func (s *FollowServiceImpl) Follow(ctx context.Context, followerID, followedID uint64) error {
	target, err := s.userRepo.GetUserById(ctx, followedID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	existing, err := s.followRepo.GetFollow(ctx, followerID, followedID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserFollowExist
	}

	// 并发重复关注由唯一键兜底
	created, err := s.followRepo.CreateFollow(ctx, &model.Follow{FollowerID: followerID, FollowedID: followedID})
	if err != nil {
		return err
	}
	if !created {
		return ErrUserFollowExist
	}

	InvalidateFollowerCount(ctx, followedID)
	InvalidateFeed(ctx)
	return nil
}

// Unfollow 未关注时同样返回成功，且不触发缓存失效
func (s *FollowServiceImpl) Unfollow(ctx context.Context, followerID, followedID uint64) error {
	existing, err := s.followRepo.GetFollow(ctx, followerID, followedID)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	if err = s.followRepo.DeleteFollow(ctx, followerID, followedID); err != nil {
		return err
	}
	InvalidateFollowerCount(ctx, followedID)
	InvalidateFeed(ctx)
	return nil
}
