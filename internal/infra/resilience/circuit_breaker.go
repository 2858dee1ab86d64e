// Package resilience guards calls to the backend with a circuit breaker so
// that a dead server fails fast instead of stacking up request timeouts.
package resilience

import (
	"context"
	"log/slog"
	"time"

	domainerrors "sitesnap/internal/domain/errors"
	"sitesnap/internal/errors"

	"github.com/sony/gobreaker"
)

// Circuit breaker defaults.
const (
	DefaultMaxRequests           uint32        = 3
	DefaultInterval              time.Duration = 60 * time.Second
	DefaultTimeout               time.Duration = 30 * time.Second
	DefaultFailureThreshold      uint32        = 5
	DefaultFailureRatioThreshold float64       = 0.5
	DefaultMinRequestsToTrip     uint32        = 10
)

// Config holds configuration for a circuit breaker.
type Config struct {
	Name                  string
	MaxRequests           uint32        // Requests allowed through while half-open
	Interval              time.Duration // Period after which closed-state counts reset (0 = never)
	Timeout               time.Duration // Time spent open before probing again
	FailureThreshold      uint32        // Consecutive failures that trip the breaker
	FailureRatioThreshold float64       // Failure ratio that trips the breaker
	MinRequestsToTrip     uint32        // Requests needed before the ratio is considered
}

// DefaultConfig returns the defaults for the named breaker.
func DefaultConfig(name string) Config {
	return Config{
		Name:                  name,
		MaxRequests:           DefaultMaxRequests,
		Interval:              DefaultInterval,
		Timeout:               DefaultTimeout,
		FailureThreshold:      DefaultFailureThreshold,
		FailureRatioThreshold: DefaultFailureRatioThreshold,
		MinRequestsToTrip:     DefaultMinRequestsToTrip,
	}
}

// StateObserver is told about every state transition.
type StateObserver interface {
	RecordBreakerState(name string, state gobreaker.State)
}

// CircuitBreaker wraps gobreaker with logging.
type CircuitBreaker struct {
	cb     *gobreaker.CircuitBreaker
	name   string
	logger *slog.Logger
}

// NewCircuitBreaker creates a breaker. isFailure decides which errors count
// against the backend; a nil isFailure counts every error.
func NewCircuitBreaker(cfg Config, isFailure func(error) bool, observer StateObserver, logger *slog.Logger) *CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if cfg.FailureThreshold > 0 && counts.ConsecutiveFailures >= cfg.FailureThreshold {
				return true
			}

			if cfg.MinRequestsToTrip > 0 && counts.Requests >= cfg.MinRequestsToTrip {
				ratio := float64(counts.TotalFailures) / float64(counts.Requests)

				return ratio >= cfg.FailureRatioThreshold
			}

			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("[CircuitBreaker] State changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			if observer != nil {
				observer.RecordBreakerState(name, to)
			}
		},
	}

	if isFailure != nil {
		settings.IsSuccessful = func(err error) bool {
			return err == nil || !isFailure(err)
		}
	}

	return &CircuitBreaker{
		cb:     gobreaker.NewCircuitBreaker(settings),
		name:   cfg.Name,
		logger: logger,
	}
}

// Execute runs fn through the breaker. An open breaker answers with
// ErrServiceUnavailable without calling fn.
func (c *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	_, err := c.cb.Execute(func() (any, error) {
		return nil, fn(ctx)
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState):
		c.logger.Warn("[CircuitBreaker] Rejected request, breaker open", slog.String("name", c.name))

		return errors.WithStack(domainerrors.ErrServiceUnavailable.WithDetails("circuit breaker open for " + c.name))
	case errors.Is(err, gobreaker.ErrTooManyRequests):
		c.logger.Warn("[CircuitBreaker] Rejected request, half-open request limit reached", slog.String("name", c.name))

		return errors.WithStack(domainerrors.ErrServiceUnavailable.WithDetails("too many requests for " + c.name))
	}

	return err
}

// State returns the current state.
func (c *CircuitBreaker) State() gobreaker.State {
	return c.cb.State()
}

// Name returns the breaker name.
func (c *CircuitBreaker) Name() string {
	return c.name
}
