package currency

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"
)

const (
	maxRetries     = 3
	baseRetryDelay = time.Second
)

func containsLetter(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLetter)
}

func normalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// retryWithBackoff retries op with exponential delays, honoring ctx
// cancellation between attempts.
func retryWithBackoff(ctx context.Context, label string, op func(context.Context) error) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			delay := baseRetryDelay << (attempt - 1)
			log.Printf("%s: attempt %d failed, retrying in %s: %v", label, attempt, delay, lastErr)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if lastErr = op(ctx); lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("%s: all %d attempts failed: %w", label, maxRetries, lastErr)
}
