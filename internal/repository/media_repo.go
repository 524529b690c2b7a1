package repository

import (
	"Warbler/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type MediaRepo interface {
	CreateMedia(ctx context.Context, media *model.Media) error
	GetMediaByIds(ctx context.Context, ids []uint64) ([]*model.Media, error)
	GetMediaCreatedBefore(ctx context.Context, before time.Time) ([]*model.Media, error)
	DeleteMedia(ctx context.Context, id uint64) error
}

type MediaRepoImpl struct {
	db *gorm.DB
}

func NewMediaRepo(db *gorm.DB) MediaRepo {
	return &MediaRepoImpl{db: db}
}

func (s *MediaRepoImpl) CreateMedia(ctx context.Context, media *model.Media) error {
	return conn(ctx, s.db).Create(media).Error
}

func (s *MediaRepoImpl) GetMediaByIds(ctx context.Context, ids []uint64) ([]*model.Media, error) {
	medias := make([]*model.Media, 0)
	if len(ids) == 0 {
		return medias, nil
	}
	err := conn(ctx, s.db).Where("id IN ?", ids).Find(&medias).Error
	if err != nil {
		return nil, err
	}
	return medias, nil
}

func (s *MediaRepoImpl) GetMediaCreatedBefore(ctx context.Context, before time.Time) ([]*model.Media, error) {
	medias := make([]*model.Media, 0)
	err := conn(ctx, s.db).
		Where("created_at < ?", before).
		Order("id").
		Find(&medias).Error
	if err != nil {
		return nil, err
	}
	return medias, nil
}

func (s *MediaRepoImpl) DeleteMedia(ctx context.Context, id uint64) error {
	return conn(ctx, s.db).Delete(&model.Media{}, id).Error
}
