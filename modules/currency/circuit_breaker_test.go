package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircuitBreakerOpensAfterThreshold(t *testing.T) {
	cb := NewCircuitBreaker()

	for i := 0; i < circuitBreakerThreshold-1; i++ {
		cb.RecordFailure()
		assert.True(t, cb.CanAttempt(), "below threshold after %d failures", i+1)
	}
	cb.RecordFailure()
	assert.False(t, cb.CanAttempt(), "open after threshold")
}

func TestCircuitBreakerSuccessResetsFailures(t *testing.T) {
	cb := NewCircuitBreaker()

	for i := 0; i < circuitBreakerThreshold-1; i++ {
		cb.RecordFailure()
	}
	for i := 0; i < 3; i++ {
		cb.RecordSuccess()
	}
	cb.RecordFailure()
	assert.True(t, cb.CanAttempt(), "success streak must reset the failure count")
}

func TestCircuitBreakerReopensFromHalfOpen(t *testing.T) {
	cb := NewCircuitBreaker()
	cb.state = circuitHalfOpen
	cb.halfOpenAttempts = 1

	cb.RecordFailure()
	assert.False(t, cb.CanAttempt(), "half-open failure reopens the circuit")
}
