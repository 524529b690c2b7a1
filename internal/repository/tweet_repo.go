package repository

import (
	"Warbler/internal/model"
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TweetRepo interface {
	CreateTweet(ctx context.Context, tweet *model.Tweet) error
	GetTweet(ctx context.Context, id uint64) (*model.Tweet, error)
	ListTweets(ctx context.Context) ([]*model.Tweet, error)
	ListAttachmentIds(ctx context.Context) (map[uint64]struct{}, error)
	DeleteTweet(ctx context.Context, id uint64) error
}

type TweetRepoImpl struct {
	db *gorm.DB
}

func NewTweetRepo(db *gorm.DB) TweetRepo {
	return &TweetRepoImpl{db: db}
}

func (s *TweetRepoImpl) CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	return conn(ctx, s.db).Omit(clause.Associations).Create(tweet).Error
}

func (s *TweetRepoImpl) GetTweet(ctx context.Context, id uint64) (*model.Tweet, error) {
	var tweet model.Tweet
	err := conn(ctx, s.db).First(&tweet, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tweet, nil
}

// ListTweets 按 id 升序返回全部推文
func (s *TweetRepoImpl) ListTweets(ctx context.Context) ([]*model.Tweet, error) {
	tweets := make([]*model.Tweet, 0)
	err := conn(ctx, s.db).Order("id").Find(&tweets).Error
	if err != nil {
		return nil, err
	}
	return tweets, nil
}

// ListAttachmentIds 返回所有推文引用过的媒体 ID
func (s *TweetRepoImpl) ListAttachmentIds(ctx context.Context) (map[uint64]struct{}, error) {
	var attachments []datatypes.JSONSlice[uint64]
	err := conn(ctx, s.db).
		Model(&model.Tweet{}).
		Pluck("attachments", &attachments).Error
	if err != nil {
		return nil, err
	}

	ids := make(map[uint64]struct{})
	for _, list := range attachments {
		for _, id := range list {
			ids[id] = struct{}{}
		}
	}
	return ids, nil
}

// DeleteTweet 删除推文并级联删除其点赞
func (s *TweetRepoImpl) DeleteTweet(ctx context.Context, id uint64) error {
	return conn(ctx, s.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tweet_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Tweet{}, id).Error
	})
}
