package service

import (
	"Warbler/internal/api/dto"
	"Warbler/internal/repository"
	"context"
)

// ProfileService 用户主页：身份加粉丝、关注列表
type ProfileService interface {
	AssembleProfile(ctx context.Context, userID uint64, userName string) (*dto.UserProfileDTO, error)
	GetProfile(ctx context.Context, userID uint64) (*dto.UserProfileDTO, error)
}

type ProfileServiceImpl struct {
	transactor repository.Transactor
	userRepo   repository.UserRepo
	graph      GraphService
}

func NewProfileService(transactor repository.Transactor, userRepo repository.UserRepo, graph GraphService) ProfileService {
	return &ProfileServiceImpl{
		transactor: transactor,
		userRepo:   userRepo,
		graph:      graph,
	}
}

// AssembleProfile 身份由调用方给出，不校验用户是否存在
func (s *ProfileServiceImpl) AssembleProfile(ctx context.Context, userID uint64, userName string) (*dto.UserProfileDTO, error) {
	profile := &dto.UserProfileDTO{ID: userID, Name: userName}
	err := s.transactor.ReadSnapshot(ctx, func(ctx context.Context) error {
		followers, err := s.graph.GetFollowers(ctx, userID)
		if err != nil {
			return err
		}
		following, err := s.graph.GetFollowing(ctx, userID)
		if err != nil {
			return err
		}
		profile.Followers = followers
		profile.Following = following
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// GetProfile 按 id 查询主页，用户不存在时返回 ErrUserNotFound
func (s *ProfileServiceImpl) GetProfile(ctx context.Context, userID uint64) (*dto.UserProfileDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.AssembleProfile(ctx, user.ID, user.Name)
}
