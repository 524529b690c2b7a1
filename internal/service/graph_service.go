package service

import (
	"Warbler/internal/api/dto"
	"Warbler/internal/model"
	"Warbler/internal/pkg/redis"
	"Warbler/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
)

const followerCountExpiration = time.Hour

// GraphService 社交关系读取，不存在的用户返回 0 或空列表
type GraphService interface {
	GetFollowerCount(ctx context.Context, userID uint64) (int64, error)
	GetFollowers(ctx context.Context, userID uint64) ([]*dto.UserBriefDTO, error)
	GetFollowing(ctx context.Context, userID uint64) ([]*dto.UserBriefDTO, error)
}

type GraphServiceImpl struct {
	followRepo repository.FollowRepo
	userRepo   repository.UserRepo
}

func NewGraphService(followRepo repository.FollowRepo, userRepo repository.UserRepo) GraphService {
	return &GraphServiceImpl{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

func (s *GraphServiceImpl) GetFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	key, cacheable := followerCountKey(ctx, userID)
	if cacheable {
		valStr, err := redis.GetValue(ctx, key)
		if err == nil && valStr != "" {
			if count, err := strconv.ParseInt(valStr, 10, 64); err == nil {
				return count, nil
			}
		}
	}

	count, err := s.followRepo.GetFollowerCount(ctx, userID)
	if err != nil {
		return 0, err
	}

	if cacheable {
		_ = redis.SetWithExpiration(ctx, key, count, followerCountExpiration)
	}
	return count, nil
}

func (s *GraphServiceImpl) GetFollowers(ctx context.Context, userID uint64) ([]*dto.UserBriefDTO, error) {
	follows, err := s.followRepo.GetFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolveCounterparts(ctx, follows, func(f *model.Follow) uint64 { return f.FollowerID })
}

func (s *GraphServiceImpl) GetFollowing(ctx context.Context, userID uint64) ([]*dto.UserBriefDTO, error) {
	follows, err := s.followRepo.GetFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolveCounterparts(ctx, follows, func(f *model.Follow) uint64 { return f.FollowedID })
}

// resolveCounterparts 按关注顺序解析对端用户名，对端用户已不存在的关系直接跳过
func (s *GraphServiceImpl) resolveCounterparts(
	ctx context.Context,
	follows []*model.Follow,
	counterpart func(f *model.Follow) uint64,
) ([]*dto.UserBriefDTO, error) {
	briefs := make([]*dto.UserBriefDTO, 0, len(follows))
	if len(follows) == 0 {
		return briefs, nil
	}

	ids := make([]uint64, 0, len(follows))
	for _, f := range follows {
		ids = append(ids, counterpart(f))
	}
	users, err := loadUsers(ctx, s.userRepo, ids)
	if err != nil {
		return nil, err
	}

	for _, f := range follows {
		id := counterpart(f)
		user, ok := users[id]
		if !ok {
			log.WarnContext(ctx, "skip dangling follow edge", "follower_id", f.FollowerID, "followed_id", f.FollowedID)
			continue
		}
		briefs = append(briefs, toUserBrief(user))
	}
	return briefs, nil
}

// loadUsers 批量加载用户，结果按 id 索引
func loadUsers(ctx context.Context, userRepo repository.UserRepo, ids []uint64) (map[uint64]*model.User, error) {
	users, err := userRepo.GetUserByIds(ctx, uniqueIds(ids))
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]*model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

func toUserBrief(user *model.User) *dto.UserBriefDTO {
	brief := &dto.UserBriefDTO{}
	_ = copier.Copy(brief, user)
	return brief
}

func uniqueIds(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
