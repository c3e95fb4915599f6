package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

type coinbaseResponse struct {
	Data coinbaseData `json:"data"`
}

type coinbaseData struct {
	Currency string            `json:"currency"`
	Rates    map[string]string `json:"rates"`
}

// fetchFiatRates pulls the fiat exchange-rate sheet. The upstream
// returns "units of X per 1 base", so each rate is inverted to the
// base-per-unit form the conversion math expects.
func (c *Converter) fetchFiatRates(ctx context.Context) (map[string]float64, error) {
	if !c.fiatCircuit.CanAttempt() {
		return nil, fmt.Errorf("fiat rates: circuit breaker open")
	}
	if err := c.fiatLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("fiat rates: rate limiter: %w", err)
	}

	url := c.cfg.FiatRatesURL + "?currency=" + c.cfg.BaseCurrency
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fiat rates: build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.fiatCircuit.RecordFailure()
		return nil, fmt.Errorf("fiat rates: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.fiatCircuit.RecordFailure()
		return nil, fmt.Errorf("fiat rates: unexpected status %d", resp.StatusCode)
	}

	var payload coinbaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.fiatCircuit.RecordFailure()
		return nil, fmt.Errorf("fiat rates: decode response: %w", err)
	}
	if payload.Data.Currency == "" || len(payload.Data.Rates) == 0 {
		c.fiatCircuit.RecordFailure()
		return nil, fmt.Errorf("fiat rates: empty response body")
	}
	c.fiatCircuit.RecordSuccess()

	prices := make(map[string]float64, len(payload.Data.Rates)+1)
	for code, raw := range payload.Data.Rates {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil || rate == 0 || !isValidFloat(rate) {
			continue
		}
		prices[code] = 1 / rate
	}
	prices[payload.Data.Currency] = 1.0
	return prices, nil
}
