package repository

import (
	"Warbler/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepo interface {
	GetFollowers(ctx context.Context, userID uint64) ([]*model.Follow, error)
	GetFollowing(ctx context.Context, userID uint64) ([]*model.Follow, error)
	GetFollowerCount(ctx context.Context, userID uint64) (int64, error)
	GetFollowerCounts(ctx context.Context) (map[uint64]int64, error)
	GetFollow(ctx context.Context, followerID, followedID uint64) (*model.Follow, error)
	CreateFollow(ctx context.Context, follow *model.Follow) (bool, error)
	DeleteFollow(ctx context.Context, followerID, followedID uint64) error
}

type FollowRepoImpl struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) FollowRepo {
	return &FollowRepoImpl{db: db}
}

// GetFollowers 获取用户的粉丝列表，按关注先后排序
func (s *FollowRepoImpl) GetFollowers(ctx context.Context, userID uint64) ([]*model.Follow, error) {
	follows := make([]*model.Follow, 0)
	result := conn(ctx, s.db).
		Where("followed_id = ?", userID).
		Order("created_at, follower_id").
		Find(&follows)

	if result.Error != nil {
		return nil, result.Error
	}
	return follows, nil
}

// GetFollowing 获取用户的关注列表，按关注先后排序
func (s *FollowRepoImpl) GetFollowing(ctx context.Context, userID uint64) ([]*model.Follow, error) {
	follows := make([]*model.Follow, 0)
	result := conn(ctx, s.db).
		Where("follower_id = ?", userID).
		Order("created_at, followed_id").
		Find(&follows)

	if result.Error != nil {
		return nil, result.Error
	}
	return follows, nil
}

// GetFollowerCount 获取用户的粉丝数量
func (s *FollowRepoImpl) GetFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := conn(ctx, s.db).
		Model(&model.Follow{}).
		Where("followed_id = ?", userID).
		Count(&count)

	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

type followerCountRow struct {
	FollowedID uint64
	Total      int64
}

// GetFollowerCounts 一次查询所有被关注用户的粉丝数，未出现的用户即为 0
func (s *FollowRepoImpl) GetFollowerCounts(ctx context.Context) (map[uint64]int64, error) {
	var rows []followerCountRow
	result := conn(ctx, s.db).
		Model(&model.Follow{}).
		Select("followed_id, COUNT(*) AS total").
		Group("followed_id").
		Scan(&rows)

	if result.Error != nil {
		return nil, result.Error
	}

	counts := make(map[uint64]int64, len(rows))
	for _, row := range rows {
		counts[row.FollowedID] = row.Total
	}
	return counts, nil
}

// GetFollow 获取关注关系
func (s *FollowRepoImpl) GetFollow(ctx context.Context, followerID, followedID uint64) (*model.Follow, error) {
	var follow model.Follow
	result := conn(ctx, s.db).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		First(&follow)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &follow, nil
}

// CreateFollow 创建关注关系，已存在时返回 false
func (s *FollowRepoImpl) CreateFollow(ctx context.Context, follow *model.Follow) (bool, error) {
	result := conn(ctx, s.db).
		Clauses(clause.OnConflict{
			DoNothing: true,
		}).
		Create(follow)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteFollow 删除关注关系
func (s *FollowRepoImpl) DeleteFollow(ctx context.Context, followerID, followedID uint64) error {
	return conn(ctx, s.db).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&model.Follow{}).Error
}
