package repository

import (
	"Warbler/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepo interface {
	CreateLike(ctx context.Context, like *model.Like) (bool, error)
	DeleteLike(ctx context.Context, tweetID, userID uint64) error
	GetLikesByTweetIds(ctx context.Context, tweetIDs []uint64) ([]*model.Like, error)
}

type LikeRepoImpl struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) LikeRepo {
	return &LikeRepoImpl{db: db}
}

// CreateLike 创建点赞，重复点赞时返回 false
func (s *LikeRepoImpl) CreateLike(ctx context.Context, like *model.Like) (bool, error) {
	result := conn(ctx, s.db).
		Clauses(clause.OnConflict{
			DoNothing: true,
		}).
		Create(like)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *LikeRepoImpl) DeleteLike(ctx context.Context, tweetID, userID uint64) error {
	return conn(ctx, s.db).
		Where("tweet_id = ? AND user_id = ?", tweetID, userID).
		Delete(&model.Like{}).Error
}

// GetLikesByTweetIds 按点赞时间排序
func (s *LikeRepoImpl) GetLikesByTweetIds(ctx context.Context, tweetIDs []uint64) ([]*model.Like, error) {
	likes := make([]*model.Like, 0)
	if len(tweetIDs) == 0 {
		return likes, nil
	}
	err := conn(ctx, s.db).
		Where("tweet_id IN ?", tweetIDs).
		Order("created_at, user_id").
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}
