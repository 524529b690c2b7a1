package kafka

import (
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

const (
	batchSize    = 32
	batchTimeout = 1 * time.Second
	maxRetryWait = 5 * time.Second
)

var errEmptyRows = errors.New("canal message has no rows")

type LogicFunc func(ctx context.Context, msgs []*sarama.ConsumerMessage) error

// pullMessageBatch 攒够 batchSize 条或等待 batchTimeout 后交给 logic 处理
func pullMessageBatch(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim, logic LogicFunc) error {
	batch := make([]*sarama.ConsumerMessage, 0, batchSize)
	ticker := time.NewTicker(batchTimeout)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		processBatch(session, batch, logic)
		batch = make([]*sarama.ConsumerMessage, 0, batchSize)
	}

	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				flush()
				return nil
			}
			batch = append(batch, msg)
			if len(batch) >= batchSize {
				flush()
				ticker.Reset(batchTimeout)
			}
		case <-ticker.C:
			flush()
		case <-session.Context().Done():
			return nil
		}
	}
}

// processBatch 失败时指数退避重试，成功后提交最后一条消息的位移
func processBatch(session sarama.ConsumerGroupSession, messages []*sarama.ConsumerMessage, logic LogicFunc) {
	ctx := session.Context()
	retryWait := 100 * time.Millisecond
	for {
		err := logic(ctx, messages)
		if err == nil {
			break
		}
		log.ErrorContext(ctx, "process canal batch error", "err", err, "size", len(messages))

		select {
		case <-ctx.Done():
			return
		case <-time.After(retryWait):
		}
		retryWait = min(retryWait*2, maxRetryWait)
	}
	session.MarkMessage(messages[len(messages)-1], "")
}

// ToCanalMessage 解析 Canal 消息，DDL 与空消息返回错误
func ToCanalMessage(msg *sarama.ConsumerMessage) (*CanalMessage, error) {
	var canalMsg CanalMessage
	if err := json.Unmarshal(msg.Value, &canalMsg); err != nil {
		return nil, err
	}
	if canalMsg.IsDDL || len(canalMsg.Data) == 0 {
		return nil, errEmptyRows
	}
	return &canalMsg, nil
}
