package publisher

import (
	"context"

	"github.com/amirhxil/partner-transaction-api/internal/dto"
)

// SettlementPublisher hands accepted transactions to the settlement backend.
type SettlementPublisher interface {
	PublishAccepted(ctx context.Context, event dto.SettlementEvent) error
}

type NoopPublisher struct{}

func (NoopPublisher) PublishAccepted(context.Context, dto.SettlementEvent) error {
	return nil
}
