package service

import (
	"context"
	"time"

	"github.com/amirhxil/partner-transaction-api/pkg/errs"
	"github.com/amirhxil/partner-transaction-api/pkg/utils"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

type TimestampPolicy struct {
	clock    clockwork.Clock
	location *time.Location
	enforce  bool
	maxSkew  time.Duration
}

func CreateTimestampPolicy(clock clockwork.Clock, location *time.Location, enforce bool, maxSkewMinutes int) TimestampPolicy {
	if location == nil {
		location = time.UTC
	}

	return TimestampPolicy{
		clock:    clock,
		location: location,
		enforce:  enforce,
		maxSkew:  time.Duration(maxSkewMinutes) * time.Minute,
	}
}

// Check parses the request timestamp. A format error always fails; a skew
// beyond the limit fails only when enforcement is on.
func (p TimestampPolicy) Check(ctx context.Context, raw string) (time.Time, error) {
	instant, err := utils.ParseTimestamp(raw, p.location)
	if err != nil {
		return time.Time{}, errs.ErrBadTimestampFormat
	}

	skew := p.Skew(instant)
	if skew > p.maxSkew {
		if p.enforce {
			return time.Time{}, errs.ErrExpiredTimestamp
		}

		log.Ctx(ctx).Warn().
			Str("component", "TimestampPolicy").
			Float64("skew_minutes", skew.Minutes()).
			Msg("timestamp outside allowed skew, enforcement disabled")
	}

	return instant, nil
}

// Skew is the absolute distance between the clock and instant.
func (p TimestampPolicy) Skew(instant time.Time) time.Duration {
	skew := p.clock.Now().Sub(instant)
	if skew < 0 {
		skew = -skew
	}

	return skew
}
