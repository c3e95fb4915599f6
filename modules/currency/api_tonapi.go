package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
)

type tonapiResponse struct {
	Rates map[string]tonapiRateEntry `json:"rates"`
}

type tonapiRateEntry struct {
	Prices map[string]float64 `json:"prices"`
}

// fetchCryptoRates pulls base-currency prices for every crypto
// identifier in the catalog. Returns an empty map when the catalog has
// no crypto entries.
func (c *Converter) fetchCryptoRates(ctx context.Context) (map[string]float64, error) {
	identifiers := c.catalog.CryptoIdentifiers()
	if len(identifiers) == 0 {
		return map[string]float64{}, nil
	}

	if !c.cryptoCircuit.CanAttempt() {
		return nil, fmt.Errorf("crypto rates: circuit breaker open")
	}
	if err := c.cryptoLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("crypto rates: rate limiter: %w", err)
	}

	query := url.Values{}
	query.Set("tokens", strings.Join(identifiers, ","))
	query.Set("currencies", strings.ToLower(c.cfg.BaseCurrency))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.CryptoRatesURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("crypto rates: build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.cryptoCircuit.RecordFailure()
		return nil, fmt.Errorf("crypto rates: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.cryptoCircuit.RecordFailure()
		return nil, fmt.Errorf("crypto rates: unexpected status %d", resp.StatusCode)
	}

	var payload tonapiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.cryptoCircuit.RecordFailure()
		return nil, fmt.Errorf("crypto rates: decode response: %w", err)
	}
	c.cryptoCircuit.RecordSuccess()

	baseKey := strings.ToUpper(c.cfg.BaseCurrency)
	prices := make(map[string]float64, len(payload.Rates))
	for identifier, entry := range payload.Rates {
		code, ok := c.catalog.CodeForAPIIdentifier(identifier)
		if !ok {
			log.Printf("crypto rates: response for unknown identifier %q, skipping", identifier)
			continue
		}
		price, ok := entry.Prices[baseKey]
		if !ok || price == 0 || !isValidFloat(price) {
			log.Printf("crypto rates: no %s price for %s, skipping", baseKey, code)
			continue
		}
		prices[code] = price
	}
	return prices, nil
}
