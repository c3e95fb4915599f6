package currency

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// RateSource identifies which upstream API prices a currency.
type RateSource int

const (
	SourceFiat RateSource = iota
	SourceCrypto
)

func (s *RateSource) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch strings.ToLower(raw) {
	case "fiat", "coinbase":
		*s = SourceFiat
	case "crypto", "tonapi":
		*s = SourceCrypto
	default:
		return fmt.Errorf("unknown rate source %q", raw)
	}
	return nil
}

func (s RateSource) MarshalJSON() ([]byte, error) {
	switch s {
	case SourceCrypto:
		return json.Marshal("crypto")
	default:
		return json.Marshal("fiat")
	}
}

// Definition describes one catalog currency: how to recognize it in text,
// how to render it, and where its price comes from.
type Definition struct {
	Code          string     `json:"code"`
	Source        RateSource `json:"source"`
	APIIdentifier string     `json:"api_identifier,omitempty"`
	Symbol        string     `json:"symbol"`
	Flag          string     `json:"flag"`
	Patterns      []string   `json:"patterns"`
	One           string     `json:"one"`
	Few           string     `json:"few"`
	Many          string     `json:"many"`
	OneEN         string     `json:"one_en"`
	ManyEN        string     `json:"many_en"`
	IsTarget      bool       `json:"is_target"`
}

// Catalog is the immutable set of supported currencies, built once at
// startup and shared by reference across all callers.
type Catalog struct {
	defs     []Definition
	byCode   map[string]*Definition
	byIdent  map[string]*Definition
	bySymbol map[string]*Definition

	targetCodes []string

	cryptoIdentifiers []string
	tickerToCode      map[string]string
	addressToCode     map[string]string
}

// LoadCatalog reads and parses the catalog file. A missing or malformed
// file aborts startup.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigRead, path, err)
	}
	var defs []Definition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	return NewCatalog(defs)
}

// NewCatalog validates definitions and builds the lookup tables.
func NewCatalog(defs []Definition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrConfigParse)
	}

	c := &Catalog{
		defs:          defs,
		byCode:        make(map[string]*Definition, len(defs)),
		byIdent:       make(map[string]*Definition),
		bySymbol:      make(map[string]*Definition),
		tickerToCode:  make(map[string]string),
		addressToCode: make(map[string]string),
	}

	for i := range c.defs {
		def := &c.defs[i]
		if def.Code == "" {
			return nil, fmt.Errorf("%w: entry %d has no code", ErrConfigParse, i)
		}
		if len(def.Patterns) == 0 {
			return nil, fmt.Errorf("%w: currency %q has no patterns", ErrConfigParse, def.Code)
		}
		if _, dup := c.byCode[def.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate currency code %q", ErrConfigParse, def.Code)
		}
		c.byCode[def.Code] = def

		if def.IsTarget {
			c.targetCodes = append(c.targetCodes, def.Code)
		}
		for _, p := range def.Patterns {
			c.byIdent[normalizeIdentifier(p)] = def
		}
		if def.Symbol != "" {
			c.bySymbol[def.Symbol] = def
		}

		if def.Source == SourceCrypto && def.APIIdentifier != "" {
			if isCryptoAddress(def.APIIdentifier) {
				c.cryptoIdentifiers = append(c.cryptoIdentifiers, def.APIIdentifier)
				c.addressToCode[def.APIIdentifier] = def.Code
			} else {
				ticker := strings.ToLower(def.APIIdentifier)
				c.cryptoIdentifiers = append(c.cryptoIdentifiers, ticker)
				c.tickerToCode[ticker] = def.Code
			}
		}
	}

	return c, nil
}

// Token contract addresses are long and carry a workchain prefix; short
// identifiers are exchange tickers.
func isCryptoAddress(id string) bool {
	return len(id) > 10 && (strings.HasPrefix(id, "EQ") || strings.HasPrefix(id, "UQ"))
}

func normalizeIdentifier(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

func (c *Catalog) Lookup(code string) (*Definition, bool) {
	def, ok := c.byCode[code]
	return def, ok
}

// ResolveIdentifier matches a raw token from text against the catalog:
// exact symbol match first, then normalized pattern match.
func (c *Catalog) ResolveIdentifier(token string) (*Definition, bool) {
	if def, ok := c.bySymbol[strings.TrimSpace(token)]; ok {
		return def, true
	}
	def, ok := c.byIdent[normalizeIdentifier(token)]
	return def, ok
}

// CodeForAPIIdentifier maps a crypto API identifier (address or ticker)
// back to its catalog code.
func (c *Catalog) CodeForAPIIdentifier(identifier string) (string, bool) {
	if code, ok := c.addressToCode[identifier]; ok {
		return code, true
	}
	code, ok := c.tickerToCode[strings.ToLower(identifier)]
	return code, ok
}

// CryptoIdentifiers returns every ticker and address to request from the
// crypto rates API, in catalog order.
func (c *Catalog) CryptoIdentifiers() []string {
	return append([]string(nil), c.cryptoIdentifiers...)
}

// TargetCodes returns the codes flagged as conversion targets.
func (c *Catalog) TargetCodes() []string {
	return append([]string(nil), c.targetCodes...)
}

// Codes returns every catalog code in file order, for settings UIs.
func (c *Catalog) Codes() []string {
	codes := make([]string, len(c.defs))
	for i := range c.defs {
		codes[i] = c.defs[i].Code
	}
	return codes
}
