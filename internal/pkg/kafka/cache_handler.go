package kafka

import (
	"Warbler/internal/model"
	"Warbler/internal/pkg/consts"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// CacheInvalidator 缓存失效的实际执行者
type CacheInvalidator interface {
	InvalidateFeed(ctx context.Context)
	InvalidateFollowerCount(ctx context.Context, userIDs ...uint64)
}

// CacheHandler 消费业务表的 Canal 变更，失效 Feed 与粉丝数缓存。
// 覆盖绕过 API 直接写库的场景
type CacheHandler struct {
	invalidator CacheInvalidator
	feedTables  map[string]struct{}
	followTable string
}

func NewCacheHandler(invalidator CacheInvalidator) *CacheHandler {
	feedTables := make(map[string]struct{})
	for _, table := range []string{
		model.User{}.TableName(),
		model.Tweet{}.TableName(),
		model.Like{}.TableName(),
		model.Follow{}.TableName(),
		model.Media{}.TableName(),
	} {
		feedTables[table] = struct{}{}
	}
	return &CacheHandler{
		invalidator: invalidator,
		feedTables:  feedTables,
		followTable: model.Follow{}.TableName(),
	}
}

func (s *CacheHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("canal cache consumer setup")
	return nil
}

func (s *CacheHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("canal cache consumer cleanup")
	return nil
}

func (s *CacheHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	return pullMessageBatch(session, claim, s.logic)
}

// logic 一批消息只失效一次 Feed 缓存
func (s *CacheHandler) logic(ctx context.Context, msgs []*sarama.ConsumerMessage) error {
	feedDirty := false
	followed := make([]uint64, 0)

	for _, msg := range msgs {
		canalMsg, err := ToCanalMessage(msg)
		if err != nil {
			log.DebugContext(ctx, "skip canal message", "err", err, "offset", msg.Offset)
			continue
		}
		if _, ok := s.feedTables[canalMsg.Table]; !ok {
			continue
		}
		switch canalMsg.Type {
		case consts.INSERT, consts.UPDATE, consts.DELETE:
		default:
			continue
		}
		feedDirty = true
		if canalMsg.Table == s.followTable {
			followed = append(followed, canalMsg.Uint64Column("followed_id")...)
		}
	}

	if len(followed) > 0 {
		s.invalidator.InvalidateFollowerCount(ctx, followed...)
	}
	if feedDirty {
		s.invalidator.InvalidateFeed(ctx)
	}
	return nil
}
