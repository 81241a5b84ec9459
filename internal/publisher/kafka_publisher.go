package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/amirhxil/partner-transaction-api/internal/dto"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

const EventTransactionAccepted = "transaction_accepted"

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaSettlementPublisher struct {
	writer     MessageWriter
	cb         *gobreaker.CircuitBreaker[struct{}]
	maxRetries int
	backoff    time.Duration
}

func CreateKafkaSettlementPublisher(writer MessageWriter, cb *gobreaker.CircuitBreaker[struct{}]) *KafkaSettlementPublisher {
	return &KafkaSettlementPublisher{
		writer:     writer,
		cb:         cb,
		maxRetries: 3,
		backoff:    100 * time.Millisecond,
	}
}

func (p *KafkaSettlementPublisher) PublishAccepted(ctx context.Context, event dto.SettlementEvent) error {
	kafkaMsg := dto.KafkaMessage{
		EventType: EventTransactionAccepted,
		Data:      event,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		return fmt.Errorf("failed to marshal Kafka message: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.PartnerKey + ":" + event.PartnerRefNo),
		Value: jsonMsg,
	}

	for i := 0; i < p.maxRetries; i++ {
		_, err = p.cb.Execute(func() (struct{}, error) {
			return struct{}{}, p.writer.WriteMessages(ctx, msg)
		})
		if err == nil {
			return nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			break
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "PublishAccepted").Int("attempt", i+1).Msg("")
		if i == p.maxRetries-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.backoff * time.Duration(i+1)):
		}
	}

	return fmt.Errorf("failed to write Kafka message after %d attempts: %w", p.maxRetries, err)
}
