package currency

import (
	"sync"
	"time"
)

const (
	circuitBreakerThreshold   = 5
	circuitBreakerTimeout     = 5 * time.Minute
	circuitBreakerHalfOpenMax = 3
)

type circuitState int

const (
	circuitClosed circuitState = iota
	circuitOpen
	circuitHalfOpen
)

// CircuitBreaker guards one upstream rate API. After repeated failures
// the circuit opens and calls are skipped until the timeout elapses.
type CircuitBreaker struct {
	mu                 sync.Mutex
	failures           int
	consecutiveSuccess int
	state              circuitState
	openUntil          time.Time
	halfOpenAttempts   int
}

func NewCircuitBreaker() *CircuitBreaker {
	return &CircuitBreaker{state: circuitClosed}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures++
	cb.consecutiveSuccess = 0

	if cb.state == circuitHalfOpen {
		cb.state = circuitOpen
		cb.openUntil = time.Now().Add(circuitBreakerTimeout)
		cb.halfOpenAttempts = 0
	} else if cb.failures >= circuitBreakerThreshold {
		cb.state = circuitOpen
		cb.openUntil = time.Now().Add(circuitBreakerTimeout)
	}
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.consecutiveSuccess++

	switch cb.state {
	case circuitHalfOpen:
		if cb.consecutiveSuccess >= 2 {
			cb.state = circuitClosed
			cb.failures = 0
			cb.halfOpenAttempts = 0
		}
	case circuitClosed:
		if cb.consecutiveSuccess >= 3 {
			cb.failures = 0
		}
	}
}

func (cb *CircuitBreaker) CanAttempt() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case circuitHalfOpen:
		if cb.halfOpenAttempts < circuitBreakerHalfOpenMax {
			cb.halfOpenAttempts++
			return true
		}
		return false
	case circuitOpen:
		if time.Now().After(cb.openUntil) {
			cb.state = circuitHalfOpen
			cb.halfOpenAttempts = 1
			cb.consecutiveSuccess = 0
			return true
		}
		return false
	default:
		return true
	}
}
