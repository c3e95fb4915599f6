package currency

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const ratesCacheKey = "rates"

// RateTable is one immutable snapshot of prices: base-currency value of
// one unit of each code. Replaced wholesale on refresh, never mutated.
type RateTable struct {
	FetchedAt time.Time
	Base      string
	Prices    map[string]float64
}

// RateCache owns the TTL policy for rate snapshots. Callers never see
// the expiry mechanics, only GetOrRefresh.
type RateCache struct {
	store *gocache.Cache
	mu    sync.Mutex
}

func NewRateCache(ttl time.Duration) *RateCache {
	return &RateCache{store: gocache.New(ttl, 2*ttl)}
}

// GetOrRefresh returns the cached snapshot, or runs fetch and caches the
// result when the snapshot is missing or expired. Concurrent callers
// serialize so only one fetch runs per expiry.
func (rc *RateCache) GetOrRefresh(ctx context.Context, fetch func(context.Context) (*RateTable, error)) (*RateTable, error) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.store.Get(ratesCacheKey); ok {
		return cached.(*RateTable), nil
	}

	table, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	rc.store.SetDefault(ratesCacheKey, table)
	return table, nil
}

// fetchRateTable runs the fiat and crypto fetches in parallel and merges
// them. Fiat failure fails the refresh; crypto failure only degrades.
// Fiat prices win on code collisions.
func (c *Converter) fetchRateTable(ctx context.Context) (*RateTable, error) {
	var (
		wg          sync.WaitGroup
		fiatPrices  map[string]float64
		fiatErr     error
		cryptoPrice map[string]float64
		cryptoErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		fiatPrices, fiatErr = c.fetchFiatRates(ctx)
	}()
	go func() {
		defer wg.Done()
		cryptoPrice, cryptoErr = c.fetchCryptoRates(ctx)
	}()
	wg.Wait()

	if fiatErr != nil {
		return nil, fmt.Errorf("rates refresh: %w", fiatErr)
	}
	if cryptoErr != nil {
		log.Printf("rates refresh: crypto source unavailable, continuing with fiat only: %v", cryptoErr)
	}

	merged := make(map[string]float64, len(fiatPrices)+len(cryptoPrice))
	for code, price := range fiatPrices {
		merged[code] = price
	}
	for code, price := range cryptoPrice {
		if _, taken := merged[code]; !taken {
			merged[code] = price
		}
	}
	if len(merged) == 0 {
		return nil, ErrNoRatesFetched
	}

	return &RateTable{
		FetchedAt: time.Now(),
		Base:      c.cfg.BaseCurrency,
		Prices:    merged,
	}, nil
}

func (c *Converter) getRates(ctx context.Context) (*RateTable, error) {
	return c.cache.GetOrRefresh(ctx, c.fetchRateTable)
}
