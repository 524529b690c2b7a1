package service

import (
	"Warbler/internal/pkg/consts"
	"Warbler/internal/pkg/redis"
	"context"
	log "log/slog"
	"strconv"
)

// InvalidateFeed 任何影响 Feed 的写操作提交之后调用
func InvalidateFeed(ctx context.Context) {
	if err := redis.Incr(ctx, consts.FeedVersionKey); err != nil {
		log.WarnContext(ctx, "invalidate feed cache failed", "err", err)
	}
}

// InvalidateFollowerCount 递增用户粉丝数缓存的版本号
func InvalidateFollowerCount(ctx context.Context, userIDs ...uint64) {
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, followerVersionKey(id))
	}
	if err := redis.Incr(ctx, keys...); err != nil {
		log.WarnContext(ctx, "invalidate follower count cache failed", "err", err)
	}
}

// versionedKey 读取版本号并拼出缓存键。
// 版本号须在读库之前读取：读库期间提交的写操作会递增版本号，旧结果只会写进无人读取的旧键
func versionedKey(ctx context.Context, versionKey, prefix string) (string, bool) {
	if !redis.Enabled() {
		return "", false
	}
	ver, err := redis.GetValue(ctx, versionKey)
	if err != nil {
		log.WarnContext(ctx, "read cache version failed", "key", versionKey, "err", err)
		return "", false
	}
	if ver == "" {
		ver = "0"
	}
	return prefix + ver, true
}

func feedCacheKey(ctx context.Context) (string, bool) {
	return versionedKey(ctx, consts.FeedVersionKey, consts.FeedKey)
}

func followerCountKey(ctx context.Context, userID uint64) (string, bool) {
	id := strconv.FormatUint(userID, 10)
	return versionedKey(ctx, followerVersionKey(userID), consts.UserFollowerCountKey+id+":")
}

func followerVersionKey(userID uint64) string {
	return consts.UserFollowerVersionKey + strconv.FormatUint(userID, 10)
}

// RedisCacheInvalidator 供 Canal 消费者调用
type RedisCacheInvalidator struct{}

func NewRedisCacheInvalidator() *RedisCacheInvalidator {
	return &RedisCacheInvalidator{}
}

func (RedisCacheInvalidator) InvalidateFeed(ctx context.Context) {
	InvalidateFeed(ctx)
}

func (RedisCacheInvalidator) InvalidateFollowerCount(ctx context.Context, userIDs ...uint64) {
	InvalidateFollowerCount(ctx, userIDs...)
}
