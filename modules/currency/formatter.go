package currency

import (
	"log"
	"math"
	"strings"

	"github.com/leekchan/accounting"
)

var amountFormatter = accounting.Accounting{Precision: 2, Thousand: ",", Decimal: "."}

// pluralForm picks the Russian-family plural variant for n. English
// definitions leave Few empty and fall back to One/Many.
func pluralForm(n uint64, one, few, many string) string {
	if few == "" {
		few = many
	}
	switch {
	case n%100 >= 11 && n%100 <= 19:
		return many
	case n%10 == 1:
		return one
	case n%10 >= 2 && n%10 <= 4:
		return few
	default:
		return many
	}
}

// currencyWord picks the plural word for a definition, preferring the
// localized forms and falling back to the English pair.
func currencyWord(def *Definition, amount float64) string {
	n := uint64(math.Abs(math.Trunc(amount)))
	if def.One != "" {
		return pluralForm(n, def.One, def.Few, def.Many)
	}
	if n%10 == 1 && n%100 != 11 {
		return def.OneEN
	}
	return def.ManyEN
}

// FormatConversionResult renders the reply block for one mention: a
// header line for the source currency followed by one line per target.
func (c *Converter) FormatConversionResult(mention DetectedMention, table *RateTable, targetCodes []string) (string, error) {
	source, ok := c.catalog.Lookup(mention.CurrencyCode)
	if !ok {
		return "", &CurrencyNotFoundError{Code: mention.CurrencyCode}
	}

	var b strings.Builder
	b.WriteString(source.Flag)
	b.WriteString(" ")
	b.WriteString(amountFormatter.FormatMoney(mention.Amount))
	b.WriteString(source.Symbol)
	b.WriteString(" ")
	b.WriteString(currencyWord(source, mention.Amount))
	b.WriteString("\n\n")

	for _, code := range targetCodes {
		if code == mention.CurrencyCode {
			continue
		}
		target, ok := c.catalog.Lookup(code)
		if !ok {
			log.Printf("formatter: target %q not in catalog, skipping", code)
			continue
		}
		converted, err := convertAmount(mention.Amount, mention.CurrencyCode, code, table)
		if err != nil {
			log.Printf("formatter: %v, skipping target %s", err, code)
			continue
		}
		b.WriteString(target.Flag)
		b.WriteString(" ")
		b.WriteString(amountFormatter.FormatMoney(converted))
		b.WriteString(target.Symbol)
		b.WriteString(" ")
		b.WriteString(currencyWord(target, converted))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

// convertAmount converts via the base currency: prices are base units
// per one unit of each code.
func convertAmount(amount float64, from, to string, table *RateTable) (float64, error) {
	if from == to {
		return amount, nil
	}
	fromPrice, ok := table.Prices[from]
	if !ok {
		return 0, &RateNotFoundError{Code: from}
	}
	toPrice, ok := table.Prices[to]
	if !ok {
		return 0, &RateNotFoundError{Code: to}
	}
	return amount * fromPrice / toPrice, nil
}
