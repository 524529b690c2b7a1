package kafka

import (
	"Warbler/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理 Kafka 消费者
type ConsumerManager struct {
	canalConsumer sarama.ConsumerGroup
	canalHandler  sarama.ConsumerGroupHandler
	canalTopic    string
}

func NewConsumerManager(cfg *config.Config, invalidator CacheInvalidator) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	canalConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaCanal.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		canalConsumer: canalConsumer,
		canalHandler:  NewCacheHandler(invalidator),
		canalTopic:    cfg.KafkaCanal.Topic,
	}, nil
}

// Start 阻塞直到 ctx 结束
func (m *ConsumerManager) Start(ctx context.Context) error {
	go func() {
		for err := range m.canalConsumer.Errors() {
			log.Error("Error from canal consumer group", "err", err)
		}
	}()

	go func() {
		log.Info("Canal consumer started", "topic", m.canalTopic)
		for {
			if err := m.canalConsumer.Consume(ctx, []string{m.canalTopic}, m.canalHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.canalConsumer.Close(); err != nil {
		log.Error("Failed to close canal consumer", "err", err)
		return err
	}
	return nil
}
