// Package circuitbreaker guards calls to the database so a failing MongoDB
// is not hammered by every request.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrCircuitOpen is returned without calling through while the breaker is open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State is the breaker position.
type State int

const (
	// StateClosed lets every call through.
	StateClosed State = iota
	// StateOpen rejects calls until the cool-down passes.
	StateOpen
	// StateHalfOpen lets a limited number of trial calls through.
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config holds circuit breaker configuration.
type Config struct {
	// FailureThreshold consecutive failures open the breaker.
	FailureThreshold int
	// SuccessThreshold consecutive trial successes close it again. It also
	// caps how many trial calls may run at once while half-open.
	SuccessThreshold int
	// Timeout is the cool-down before trial calls are allowed.
	Timeout time.Duration
	// Name identifies the breaker in logs, metrics and readiness output.
	Name string
	// OnStateChange is called after every transition with the breaker lock
	// held. It must not call back into the breaker.
	OnStateChange func(name string, from, to State)
}

// DefaultConfig returns the default thresholds.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             "circuit-breaker",
	}
}

// CircuitBreaker counts consecutive failures of the calls it wraps.
type CircuitBreaker struct {
	config Config
	now    func() time.Time

	mu        sync.Mutex
	state     State
	failures  int
	successes int
	trials    int // trial calls in flight while half-open
	openedAt  time.Time
	lastFail  time.Time
}

// New creates a closed breaker. Non-positive settings fall back to DefaultConfig.
func New(config Config) *CircuitBreaker {
	defaults := DefaultConfig()
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = defaults.FailureThreshold
	}
	if config.SuccessThreshold <= 0 {
		config.SuccessThreshold = defaults.SuccessThreshold
	}
	if config.Timeout <= 0 {
		config.Timeout = defaults.Timeout
	}
	return &CircuitBreaker{config: config, now: time.Now}
}

// Name returns the configured breaker name.
func (cb *CircuitBreaker) Name() string {
	return cb.config.Name
}

// Execute runs fn unless the breaker rejects the call. Errors caused by the
// caller's own context ending are not counted against the database.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	trial, err := cb.admit()
	if err != nil {
		return err
	}

	err = fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	if trial {
		cb.trials--
	}

	switch {
	case err == nil:
		cb.recordSuccess()
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
	default:
		cb.recordFailure()
	}
	return err
}

// admit decides whether a call may proceed and whether it is a trial call.
func (cb *CircuitBreaker) admit() (trial bool, err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen {
		if cb.now().Sub(cb.openedAt) < cb.config.Timeout {
			return false, ErrCircuitOpen
		}
		cb.successes = 0
		cb.transition(StateHalfOpen)
	}
	if cb.state == StateHalfOpen {
		if cb.trials >= cb.config.SuccessThreshold {
			return false, ErrCircuitOpen
		}
		cb.trials++
		return true, nil
	}
	return false, nil
}

func (cb *CircuitBreaker) recordFailure() {
	cb.failures++
	cb.lastFail = cb.now()

	if cb.state == StateHalfOpen || cb.failures >= cb.config.FailureThreshold {
		cb.openedAt = cb.lastFail
		cb.transition(StateOpen)
	}
}

func (cb *CircuitBreaker) recordSuccess() {
	cb.failures = 0
	if cb.state != StateHalfOpen {
		return
	}
	cb.successes++
	if cb.successes >= cb.config.SuccessThreshold {
		cb.successes = 0
		cb.transition(StateClosed)
	}
}

// transition must be called with mu held.
func (cb *CircuitBreaker) transition(to State) {
	from := cb.state
	if from == to {
		return
	}
	cb.state = to
	if cb.config.OnStateChange != nil {
		cb.config.OnStateChange(cb.config.Name, from, to)
	}
}

// State returns the current position.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// IsOpen reports whether calls are currently rejected outright.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.State() == StateOpen
}

// Stats is a point-in-time snapshot of a breaker.
type Stats struct {
	Name         string    `json:"name"`
	State        string    `json:"state"`
	FailureCount int       `json:"failure_count"`
	SuccessCount int       `json:"success_count"`
	LastFailure  time.Time `json:"last_failure,omitempty"`
	// RetryAt is when an open breaker starts admitting trial calls.
	RetryAt   *time.Time `json:"retry_at,omitempty"`
	IsHealthy bool       `json:"is_healthy"`
}

// GetStats returns a snapshot for readiness output.
func (cb *CircuitBreaker) GetStats() Stats {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	stats := Stats{
		Name:         cb.config.Name,
		State:        cb.state.String(),
		FailureCount: cb.failures,
		SuccessCount: cb.successes,
		LastFailure:  cb.lastFail,
		IsHealthy:    cb.state == StateClosed,
	}
	if cb.state == StateOpen {
		retry := cb.openedAt.Add(cb.config.Timeout)
		stats.RetryAt = &retry
	}
	return stats
}
