package kafka

import (
	"time"

	"github.com/amirhxil/partner-transaction-api/config"
	"github.com/segmentio/kafka-go"
)

// CreateKafkaWriter does not dial; the first write connects to the broker.
func CreateKafkaWriter(config *config.Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(config.KafkaConfig.BrokerAddress),
		Topic:        config.KafkaConfig.BrokerTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: 2 * time.Second,
		MaxAttempts:  1,
	}
}
