package breaker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

var (
	// ErrUnavailable is returned when the circuit is open (or a half-open
	// trial slot is taken) and no fallback was supplied. The protected call
	// is not attempted.
	ErrUnavailable = errors.New("breaker: dependency unavailable")

	// ErrCallTimeout is returned when the protected call exceeds the
	// configured hard timeout. The in-flight call is abandoned.
	ErrCallTimeout = errors.New("breaker: call timed out")
)

// State represents the circuit breaker state.
type State string

const (
	StateClosed   State = "CLOSED"
	StateOpen     State = "OPEN"
	StateHalfOpen State = "HALF_OPEN"
)

// Config holds circuit breaker tuning parameters.
type Config struct {
	FailureThreshold uint32        // consecutive failures that trip CLOSED -> OPEN
	SuccessThreshold uint32        // consecutive HALF_OPEN successes that close the circuit
	CallTimeout      time.Duration // hard per-call timeout
	ResetTimeout     time.Duration // how long the circuit stays OPEN before a trial
}

func (c Config) withDefaults() Config {
	if c.FailureThreshold == 0 {
		c.FailureThreshold = 5
	}
	if c.SuccessThreshold == 0 {
		c.SuccessThreshold = 2
	}
	if c.CallTimeout <= 0 {
		c.CallTimeout = 3 * time.Second
	}
	if c.ResetTimeout <= 0 {
		c.ResetTimeout = 30 * time.Second
	}
	return c
}

// Stats is a point-in-time snapshot of a breaker, for the health surface.
type Stats struct {
	Name                 string    `json:"name"`
	State                State     `json:"state"`
	ConsecutiveFailures  uint32    `json:"consecutive_failures"`
	ConsecutiveSuccesses uint32    `json:"consecutive_successes"`
	TotalSuccesses       uint64    `json:"total_successes"`
	TotalFailures        uint64    `json:"total_failures"`
	LastSuccess          time.Time `json:"last_success,omitzero"`
	LastFailure          time.Time `json:"last_failure,omitzero"`
	NextRetryAt          time.Time `json:"next_retry_at,omitzero"`
}

// Fn is a call protected by the breaker. It must honor ctx cancellation;
// a call still running at the hard timeout is abandoned, not interrupted.
type Fn func(ctx context.Context) (any, error)

// Breaker wraps a single dependency with circuit breaking, a hard per-call
// timeout, and lifetime statistics.
type Breaker struct {
	name string
	cfg  Config
	cb   *gobreaker.CircuitBreaker
	log  zerolog.Logger

	mu             sync.Mutex
	totalSuccesses uint64
	totalFailures  uint64
	lastSuccess    time.Time
	lastFailure    time.Time
	nextRetryAt    time.Time
}

// New creates a named Breaker.
func New(name string, cfg Config, log zerolog.Logger) *Breaker {
	cfg = cfg.withDefaults()

	b := &Breaker{
		name: name,
		cfg:  cfg,
		log:  log,
	}

	b.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.SuccessThreshold,
		Timeout:     cfg.ResetTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: b.onStateChange,
	})

	return b
}

// Name returns the dependency name this breaker protects.
func (b *Breaker) Name() string { return b.name }

// Do runs fn through the breaker. While the circuit is open (or the
// half-open trial slot is taken) it returns ErrUnavailable without invoking
// fn. A call exceeding the hard timeout fails with ErrCallTimeout and
// counts as a failure.
func (b *Breaker) Do(ctx context.Context, fn Fn) (any, error) {
	v, err := b.cb.Execute(func() (any, error) {
		return b.invoke(ctx, fn)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%s: %w", b.name, ErrUnavailable)
	}

	b.record(err)
	return v, err
}

// DoWithFallback runs fn through the breaker, substituting fallback when the
// circuit rejects the call without attempting it.
func (b *Breaker) DoWithFallback(ctx context.Context, fn Fn, fallback Fn) (any, error) {
	v, err := b.Do(ctx, fn)
	if errors.Is(err, ErrUnavailable) && fallback != nil {
		return fallback(ctx)
	}
	return v, err
}

// State returns the current circuit state.
func (b *Breaker) State() State {
	switch b.cb.State() {
	case gobreaker.StateOpen:
		return StateOpen
	case gobreaker.StateHalfOpen:
		return StateHalfOpen
	default:
		return StateClosed
	}
}

// Stats returns a snapshot of the breaker for observability.
func (b *Breaker) Stats() Stats {
	counts := b.cb.Counts()

	b.mu.Lock()
	defer b.mu.Unlock()

	return Stats{
		Name:                 b.name,
		State:                b.State(),
		ConsecutiveFailures:  counts.ConsecutiveFailures,
		ConsecutiveSuccesses: counts.ConsecutiveSuccesses,
		TotalSuccesses:       b.totalSuccesses,
		TotalFailures:        b.totalFailures,
		LastSuccess:          b.lastSuccess,
		LastFailure:          b.lastFailure,
		NextRetryAt:          b.nextRetryAt,
	}
}

// invoke runs fn under the hard timeout. The call runs in its own goroutine
// so a hung dependency cannot hold the request past the deadline.
func (b *Breaker) invoke(ctx context.Context, fn Fn) (any, error) {
	cctx, cancel := context.WithTimeout(ctx, b.cfg.CallTimeout)
	defer cancel()

	type result struct {
		v   any
		err error
	}
	done := make(chan result, 1)

	go func() {
		v, err := fn(cctx)
		done <- result{v: v, err: err}
	}()

	select {
	case r := <-done:
		return r.v, r.err
	case <-cctx.Done():
		return nil, fmt.Errorf("%s after %s: %w", b.name, b.cfg.CallTimeout, ErrCallTimeout)
	}
}

func (b *Breaker) record(err error) {
	now := time.Now()

	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.totalFailures++
		b.lastFailure = now
		return
	}
	b.totalSuccesses++
	b.lastSuccess = now
}

func (b *Breaker) onStateChange(name string, from, to gobreaker.State) {
	if to == gobreaker.StateOpen {
		b.mu.Lock()
		b.nextRetryAt = time.Now().Add(b.cfg.ResetTimeout)
		b.mu.Unlock()
	}

	b.log.Warn().
		Str("breaker", name).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("circuit breaker state changed")
}
