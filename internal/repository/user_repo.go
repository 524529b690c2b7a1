package repository

import (
	"Warbler/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByIds(ctx context.Context, ids []uint64) ([]*model.User, error)
	GetUserByApiKey(ctx context.Context, apiKey string) (*model.User, error)
	GetUserByName(ctx context.Context, name string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := conn(ctx, s.db).First(user, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUserByIds(ctx context.Context, ids []uint64) ([]*model.User, error) {
	users := make([]*model.User, 0)
	if len(ids) == 0 {
		return users, nil
	}
	result := conn(ctx, s.db).
		Where("id IN ?", ids).
		Order("id").
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (s *UserRepoImpl) GetUserByApiKey(ctx context.Context, apiKey string) (*model.User, error) {
	user := &model.User{}
	result := conn(ctx, s.db).
		Where("api_key = ?", apiKey).
		First(user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUserByName(ctx context.Context, name string) (*model.User, error) {
	user := &model.User{}
	result := conn(ctx, s.db).
		Where("name = ?", name).
		First(user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

// ListUsers 按 id 升序返回全部用户
func (s *UserRepoImpl) ListUsers(ctx context.Context) ([]*model.User, error) {
	users := make([]*model.User, 0)
	result := conn(ctx, s.db).Order("id").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return conn(ctx, s.db).Create(user).Error
}
