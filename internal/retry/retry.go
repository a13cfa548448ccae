package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Retriable reports whether a failed call is worth another attempt.
type Retriable func(err error) bool

// Always treats every error as transient.
func Always(error) bool { return true }

func WithBackoff[T any](
	ctx context.Context,
	maxRetries int,
	baseDelay time.Duration,
	isRetriable Retriable,
	fn func() (T, error),
) (T, error) {
	var zero T
	if maxRetries <= 0 {
		return zero, fmt.Errorf("maxRetries must be > 0, got %d", maxRetries)
	}
	if isRetriable == nil {
		isRetriable = Always
	}
	var lastErr error

	for i := range maxRetries {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !isRetriable(err) {
			return zero, err
		}

		if i < maxRetries-1 {
			var jitter time.Duration
			if baseDelay > 0 {
				jitter = time.Duration(rand.Int63n(int64(baseDelay))) //nolint:gosec // jitter doesn't need crypto rand
			}
			delay := time.Duration(math.Pow(2, float64(i)))*baseDelay + jitter
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return zero, fmt.Errorf("after %d attempts: %w", maxRetries, lastErr)
}

type CircuitState int

const (
	StateClosed CircuitState = iota
	StateOpen
	StateHalfOpen
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitBreaker struct {
	mu               sync.Mutex
	state            CircuitState
	failureCount     int
	failureThreshold int
	resetTimeout     time.Duration
	lastFailureTime  time.Time
	isRetriable      Retriable
}

func NewCircuitBreaker(failureThreshold int, resetTimeout time.Duration, isRetriable Retriable) *CircuitBreaker {
	if isRetriable == nil {
		isRetriable = Always
	}
	return &CircuitBreaker{
		state:            StateClosed,
		failureThreshold: failureThreshold,
		resetTimeout:     resetTimeout,
		isRetriable:      isRetriable,
	}
}

func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *CircuitBreaker) Execute(fn func() error) error {
	cb.mu.Lock()
	if cb.state == StateOpen {
		if time.Since(cb.lastFailureTime) > cb.resetTimeout {
			cb.state = StateHalfOpen
		} else {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil && cb.isRetriable(err) {
		cb.failureCount++
		cb.lastFailureTime = time.Now()
		if cb.failureCount >= cb.failureThreshold || cb.state == StateHalfOpen {
			cb.state = StateOpen
		}
		return err
	}

	if err == nil {
		cb.failureCount = 0
		cb.state = StateClosed
	}

	return err
}

// WithCircuitBreaker retries fn while the breaker stays closed; an open breaker
// is not retriable and ends the loop immediately.
func WithCircuitBreaker[T any](
	ctx context.Context,
	cb *CircuitBreaker,
	maxRetries int,
	baseDelay time.Duration,
	isRetriable Retriable,
	fn func() (T, error),
) (T, error) {
	if isRetriable == nil {
		isRetriable = Always
	}
	wrappedFn := func() (T, error) {
		var result T
		var fnErr error
		cbErr := cb.Execute(func() error {
			result, fnErr = fn()
			return fnErr
		})
		if cbErr != nil && !errors.Is(cbErr, fnErr) {
			return result, cbErr
		}
		return result, fnErr
	}
	guarded := func(err error) bool {
		return !errors.Is(err, ErrCircuitOpen) && isRetriable(err)
	}
	return WithBackoff(ctx, maxRetries, baseDelay, guarded, wrappedFn)
}
