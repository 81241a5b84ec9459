package circuitbreaker

import (
	"errors"
	"testing"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
)

func execute(cb *gobreaker.CircuitBreaker[struct{}], err error) {
	_, _ = cb.Execute(func() (struct{}, error) {
		return struct{}{}, err
	})
}

func TestCircuitBreaker_TripsOnFailureRatio(t *testing.T) {
	cb := CreateCircuitBreaker("test")

	for i := 0; i < 3; i++ {
		execute(cb, errors.New("broker unavailable"))
	}

	assert.Equal(t, gobreaker.StateOpen, cb.State())
}

func TestCircuitBreaker_TripsAfterLongSuccessRun(t *testing.T) {
	cb := CreateCircuitBreaker("test")

	for i := 0; i < 100; i++ {
		execute(cb, nil)
	}
	assert.Equal(t, gobreaker.StateClosed, cb.State())

	for i := 0; i < consecutiveTrips; i++ {
		execute(cb, errors.New("broker unavailable"))
	}

	assert.Equal(t, gobreaker.StateOpen, cb.State())
}
