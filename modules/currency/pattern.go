package currency

import (
	"fmt"
	"regexp"
	"strings"
)

// Numeric tokens: a digit followed by digits, separators, magnitude
// suffix letters and arithmetic operators. Parsed for real by amount.go;
// the pattern only needs to capture a plausible span.
const numericToken = `\d[\d.,_ \x{00A0}кkмmбbтt*/]*`

// compiledPattern bundles the detection regex with its named-group
// index table so match handling never relies on group positions.
type compiledPattern struct {
	re     *regexp.Regexp
	groups map[string]int
}

// compilePattern builds the single detection regex from the catalog.
// Four alternated shapes, tried in order:
//
//	1. digits + multiplier word + currency word  ("5 million dollars")
//	2. [multiplier word] + amount or numeral phrase + currency word
//	3. currency symbol + amount                  ("$200")
//	4. amount + currency symbol                  ("200₴")
func compilePattern(catalog *Catalog) (*compiledPattern, error) {
	var patterns, symbols []string
	for _, code := range catalog.Codes() {
		def, _ := catalog.Lookup(code)
		for _, p := range def.Patterns {
			patterns = append(patterns, regexp.QuoteMeta(p))
		}
		if def.Symbol != "" {
			symbols = append(symbols, regexp.QuoteMeta(def.Symbol))
		}
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("%w: no currency patterns to compile", ErrConfigParse)
	}
	sortLongestFirst(patterns)
	sortLongestFirst(symbols)

	mults := quoteAll(multiplierWords())
	words := quoteAll(numeralWords())

	patternAlt := strings.Join(patterns, "|")
	multAlt := strings.Join(mults, "|")
	wordRun := `(?:` + strings.Join(words, "|") + `)(?:\s+(?:` + strings.Join(words, "|") + `))*`

	shapes := []string{
		`(?P<amt1>` + numericToken + `)\s+(?P<mult1>` + multAlt + `)\s+(?P<cur1>` + patternAlt + `)`,
		`(?:(?P<mult2>` + multAlt + `)\s+)?(?P<amt2>` + numericToken + `|` + wordRun + `)\s*(?P<cur2>` + patternAlt + `)`,
	}
	if len(symbols) > 0 {
		symbolAlt := strings.Join(symbols, "|")
		shapes = append(shapes,
			`(?P<sym3>`+symbolAlt+`)\s*(?P<amt3>`+numericToken+`)`,
			`(?P<amt4>`+numericToken+`)\s*(?P<sym4>`+symbolAlt+`)`,
		)
	}

	re, err := regexp.Compile(`(?i)(?:` + strings.Join(shapes, "|") + `)`)
	if err != nil {
		return nil, fmt.Errorf("%w: detection pattern: %v", ErrConfigParse, err)
	}

	groups := make(map[string]int)
	for i, name := range re.SubexpNames() {
		if name != "" {
			groups[name] = i
		}
	}
	return &compiledPattern{re: re, groups: groups}, nil
}

// group returns the captured text and start offset for a named group in
// a FindAllStringSubmatchIndex match, or ok=false when it did not match.
func (p *compiledPattern) group(text string, match []int, name string) (string, int, bool) {
	idx, known := p.groups[name]
	if !known || match[2*idx] < 0 {
		return "", 0, false
	}
	return text[match[2*idx]:match[2*idx+1]], match[2*idx], true
}

func quoteAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = regexp.QuoteMeta(w)
	}
	return out
}
