package currency

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigRead and ErrConfigParse mark catalog loading failures.
	// Both are fatal at startup; the engine never retries them per call.
	ErrConfigRead  = errors.New("currency catalog unreadable")
	ErrConfigParse = errors.New("currency catalog malformed")

	// ErrNoRatesFetched means a refresh produced an empty price table.
	ErrNoRatesFetched = errors.New("no rates could be fetched from any source")
)

// CurrencyNotFoundError reports a mention that resolved to a code the
// catalog does not contain. This is a catalog/detector mismatch, not a
// user input problem, so callers log it as a bug and skip the mention.
type CurrencyNotFoundError struct {
	Code string
}

func (e *CurrencyNotFoundError) Error() string {
	return fmt.Sprintf("currency %q not found in the catalog", e.Code)
}

// RateNotFoundError reports a code missing from the current price table.
// Expected transient condition, e.g. the crypto source was unreachable
// during the last refresh.
type RateNotFoundError struct {
	Code string
}

func (e *RateNotFoundError) Error() string {
	return fmt.Sprintf("rate for %q not found in the current price table", e.Code)
}
