package service

import (
	"Warbler/internal/model"
	"Warbler/internal/repository"
	"context"
	log "log/slog"
)

type UserService interface {
	GetUserByApiKey(ctx context.Context, apiKey string) (*model.User, error)
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	SeedUsers(ctx context.Context, users []*model.User) (int, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// GetUserByApiKey api-key 为空或不存在时返回对应的错误
func (s *UserServiceImpl) GetUserByApiKey(ctx context.Context, apiKey string) (*model.User, error) {
	if apiKey == "" {
		return nil, ErrApiKeyMissing
	}
	user, err := s.userRepo.GetUserByApiKey(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrApiKeyInvalid
	}
	return user, nil
}

func (s *UserServiceImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// SeedUsers 创建初始用户，已存在的用户名跳过，返回新建数量
func (s *UserServiceImpl) SeedUsers(ctx context.Context, users []*model.User) (int, error) {
	created := 0
	for _, u := range users {
		exist, err := s.userRepo.GetUserByName(ctx, u.Name)
		if err != nil {
			return created, err
		}
		if exist != nil {
			log.InfoContext(ctx, "seed user exists, skip", "name", u.Name)
			continue
		}
		if err = s.userRepo.CreateUser(ctx, u); err != nil {
			return created, err
		}
		created++
	}
	if created > 0 {
		InvalidateFeed(ctx)
	}
	return created, nil
}

// DefaultSeedUsers 本地开发使用的测试账号
func DefaultSeedUsers() []*model.User {
	return []*model.User{
		{Name: "test_user", ApiKey: "test"},
		{Name: "222_user", ApiKey: "222"},
		{Name: "333_user", ApiKey: "333"},
	}
}
