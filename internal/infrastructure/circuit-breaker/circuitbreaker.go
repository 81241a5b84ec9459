package circuitbreaker

import (
	"time"

	"github.com/sony/gobreaker/v2"
)

const (
	countsInterval   = 30 * time.Second
	openTimeout      = 15 * time.Second
	consecutiveTrips = 5
)

func CreateCircuitBreaker(name string) *gobreaker.CircuitBreaker[struct{}] {
	var st gobreaker.Settings
	st.Name = name
	st.Interval = countsInterval
	st.Timeout = openTimeout
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		if counts.ConsecutiveFailures >= consecutiveTrips {
			return true
		}
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}

	return gobreaker.NewCircuitBreaker[struct{}](st)
}
