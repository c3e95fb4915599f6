package currency

import (
	"context"
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Converter is the engine façade: detection, rate refresh and
// formatting behind one ProcessText call. Safe for concurrent use.
type Converter struct {
	cfg     Config
	catalog *Catalog
	pattern *compiledPattern
	cache   *RateCache
	client  *http.Client

	fiatLimiter   *rate.Limiter
	cryptoLimiter *rate.Limiter
	fiatCircuit   *CircuitBreaker
	cryptoCircuit *CircuitBreaker
}

// New builds a Converter from the catalog file named in cfg.
func New(cfg Config) (*Converter, error) {
	catalog, err := LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	return NewWithCatalog(cfg, catalog)
}

// NewWithCatalog builds a Converter around an already-constructed
// catalog, used by tests and embedders that supply definitions directly.
func NewWithCatalog(cfg Config, catalog *Catalog) (*Converter, error) {
	pattern, err := compilePattern(catalog)
	if err != nil {
		return nil, err
	}
	return &Converter{
		cfg:           cfg,
		catalog:       catalog,
		pattern:       pattern,
		cache:         NewRateCache(cfg.CacheTTL),
		client:        &http.Client{Timeout: cfg.APITimeout},
		fiatLimiter:   rate.NewLimiter(rate.Every(time.Second), 10),
		cryptoLimiter: rate.NewLimiter(rate.Every(time.Second), 10),
		fiatCircuit:   NewCircuitBreaker(),
		cryptoCircuit: NewCircuitBreaker(),
	}, nil
}

// Catalog exposes the loaded catalog for settings UIs.
func (c *Converter) Catalog() *Catalog {
	return c.catalog
}

// ProcessText detects currency mentions in text and renders one
// conversion block per mention against targetCodes. No mentions or no
// targets yields a nil slice and no error; rate refresh failure is the
// only error path.
func (c *Converter) ProcessText(ctx context.Context, text string, targetCodes []string) ([]string, error) {
	if len(targetCodes) == 0 {
		return nil, nil
	}

	mentions := c.ParseTextForCurrencies(text)
	if len(mentions) == 0 {
		return nil, nil
	}

	table, err := c.getRates(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]string, 0, len(mentions))
	for _, mention := range mentions {
		block, err := c.FormatConversionResult(mention, table, targetCodes)
		if err != nil {
			log.Printf("conversion for %s skipped: %v", mention.CurrencyCode, err)
			continue
		}
		results = append(results, block)
	}
	return results, nil
}

// WarmUp fills the rate cache before the first message, retrying with
// backoff. Callers treat failure as non-fatal; the cache refills on
// demand.
func (c *Converter) WarmUp(ctx context.Context) error {
	return retryWithBackoff(ctx, "rates warm-up", func(ctx context.Context) error {
		_, err := c.getRates(ctx)
		return err
	})
}

// Name implements modules.Module.
func (c *Converter) Name() string {
	return "currency"
}

// ProcessMessage implements modules.Module.
func (c *Converter) ProcessMessage(ctx context.Context, text string, targetCodes []string) ([]string, error) {
	return c.ProcessText(ctx, text, targetCodes)
}
