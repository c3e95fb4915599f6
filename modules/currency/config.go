package currency

import (
	"os"
	"time"
)

const (
	defaultCatalogPath    = "modules/currency/config/currencies.json"
	defaultFiatRatesURL   = "https://api.coinbase.com/v2/exchange-rates"
	defaultCryptoRatesURL = "https://tonapi.io/v2/rates"
	defaultBaseCurrency   = "UAH"
	defaultCacheTTL       = 10 * time.Minute
	defaultAPITimeout     = 10 * time.Second
)

// Config carries the engine settings. Values come from the environment
// (a .env file is loaded by main before this runs) with sane defaults.
type Config struct {
	CatalogPath    string
	FiatRatesURL   string
	CryptoRatesURL string
	BaseCurrency   string
	CacheTTL       time.Duration
	APITimeout     time.Duration
}

func LoadConfig() Config {
	return Config{
		CatalogPath:    envOr("CURRENCY_CATALOG_PATH", defaultCatalogPath),
		FiatRatesURL:   envOr("FIAT_RATES_URL", defaultFiatRatesURL),
		CryptoRatesURL: envOr("CRYPTO_RATES_URL", defaultCryptoRatesURL),
		BaseCurrency:   envOr("BASE_CURRENCY", defaultBaseCurrency),
		CacheTTL:       envDurationOr("RATES_CACHE_TTL", defaultCacheTTL),
		APITimeout:     envDurationOr("RATES_API_TIMEOUT", defaultAPITimeout),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
