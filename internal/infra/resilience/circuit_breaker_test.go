package resilience

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	domainerrors "sitesnap/internal/domain/errors"
	"sitesnap/internal/errors"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingObserver struct {
	states []gobreaker.State
}

func (r *recordingObserver) RecordBreakerState(_ string, state gobreaker.State) {
	r.states = append(r.states, state)
}

func createTestBreaker(t *testing.T, isFailure func(error) bool) (*CircuitBreaker, *recordingObserver) {
	t.Helper()

	cfg := DefaultConfig("backend")
	cfg.FailureThreshold = 2
	cfg.Timeout = time.Minute
	observer := &recordingObserver{}

	return NewCircuitBreaker(cfg, isFailure, observer, newDiscardLogger()), observer
}

func TestCircuitBreaker_TripsAfterConsecutiveFailures(t *testing.T) {
	breaker, observer := createTestBreaker(t, nil)
	ctx := context.Background()
	boom := errors.New("connection refused")
	calls := 0

	for range 2 {
		err := breaker.Execute(ctx, func(context.Context) error {
			calls++

			return boom
		})
		assert.ErrorIs(t, err, boom)
	}

	err := breaker.Execute(ctx, func(context.Context) error {
		calls++

		return nil
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrServiceUnavailable))
	assert.Equal(t, 2, calls)
	assert.Equal(t, gobreaker.StateOpen, breaker.State())
	assert.Equal(t, []gobreaker.State{gobreaker.StateOpen}, observer.states)
}

func TestCircuitBreaker_IgnoresNonFailures(t *testing.T) {
	notFound := domainerrors.ErrNotFound.WithDetails("p1")
	breaker, _ := createTestBreaker(t, func(err error) bool {
		return !errors.Is(err, domainerrors.ErrNotFound)
	})

	for range 5 {
		err := breaker.Execute(context.Background(), func(context.Context) error {
			return notFound
		})
		assert.ErrorIs(t, err, notFound)
	}

	assert.Equal(t, gobreaker.StateClosed, breaker.State())
}
