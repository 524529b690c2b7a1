package kafka

import (
	"Warbler/internal/api/config"
	"time"

	"github.com/IBM/sarama"
)

const clientID = "warbler"

// newSaramaConfig 消费者统一配置，位移在一批消息处理完成后手动提交
func newSaramaConfig(kafkaCfg config.KafkaConfig) *sarama.Config {
	c := sarama.NewConfig()
	c.ClientID = clientID

	if kafkaCfg.Sasl.Enable {
		c.Net.SASL.Enable = true
		c.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		c.Net.SASL.User = kafkaCfg.Sasl.Username
		c.Net.SASL.Password = kafkaCfg.Sasl.Password
	}

	c.Consumer.Return.Errors = true
	c.Consumer.Offsets.Initial = sarama.OffsetNewest
	c.Consumer.Offsets.AutoCommit.Enable = true

	c.Consumer.Group.Session.Timeout = seconds(kafkaCfg.Consumer.SessionTimeout)
	c.Consumer.Group.Heartbeat.Interval = seconds(kafkaCfg.Consumer.HeartbeatInterval)
	c.Consumer.Group.Rebalance.Timeout = seconds(kafkaCfg.Consumer.RebalanceTimeout)
	c.Consumer.MaxProcessingTime = seconds(kafkaCfg.Consumer.MaxProcessingTime)

	return c
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
