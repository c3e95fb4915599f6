package currency

import (
	"math"
	"unicode"
	"unicode/utf8"
)

// mentionShape classifies which alternation of the detection pattern
// produced a match.
type mentionShape int

const (
	shapeDigitsWithMultiplier mentionShape = iota
	shapeAmountWithPattern
	shapeSymbolAmount
	shapeAmountSymbol
)

type rawMention struct {
	shape      mentionShape
	amount     string
	multiplier string
	identifier string
	amountPos  int
}

// DetectedMention is one resolved currency mention in the input text.
type DetectedMention struct {
	Amount       float64
	CurrencyCode string
}

// ParseTextForCurrencies scans text for currency mentions and resolves
// each to an amount and catalog code. Mentions whose amount or currency
// cannot be resolved are dropped silently.
func (c *Converter) ParseTextForCurrencies(text string) []DetectedMention {
	var mentions []DetectedMention
	for _, match := range c.pattern.re.FindAllStringSubmatchIndex(text, -1) {
		raw, ok := c.classifyMatch(text, match)
		if !ok {
			continue
		}
		if !hasCleanBoundaries(text, raw.amountPos, match[1]) {
			continue
		}

		amount, ok := parseMentionAmount(raw.amount)
		if !ok {
			continue
		}
		if raw.multiplier != "" {
			info, known := numberWords[normalizeWord(raw.multiplier)]
			if !known || !info.IsMultiplier {
				continue
			}
			amount *= info.Value
		}
		if !isValidFloat(amount) {
			continue
		}

		def, found := c.catalog.ResolveIdentifier(raw.identifier)
		if !found {
			continue
		}
		mentions = append(mentions, DetectedMention{Amount: amount, CurrencyCode: def.Code})
	}
	return mentions
}

// classifyMatch maps a regex match to its shape by checking which
// currency-bearing group captured.
func (c *Converter) classifyMatch(text string, match []int) (rawMention, bool) {
	if cur, _, ok := c.pattern.group(text, match, "cur1"); ok {
		amt, pos, _ := c.pattern.group(text, match, "amt1")
		mult, _, _ := c.pattern.group(text, match, "mult1")
		return rawMention{shapeDigitsWithMultiplier, amt, mult, cur, pos}, true
	}
	if cur, _, ok := c.pattern.group(text, match, "cur2"); ok {
		amt, pos, _ := c.pattern.group(text, match, "amt2")
		mult, mpos, hasMult := c.pattern.group(text, match, "mult2")
		if hasMult {
			pos = mpos
		}
		return rawMention{shapeAmountWithPattern, amt, mult, cur, pos}, true
	}
	if sym, pos, ok := c.pattern.group(text, match, "sym3"); ok {
		amt, _, _ := c.pattern.group(text, match, "amt3")
		return rawMention{shapeSymbolAmount, amt, "", sym, pos}, true
	}
	if sym, _, ok := c.pattern.group(text, match, "sym4"); ok {
		amt, pos, _ := c.pattern.group(text, match, "amt4")
		return rawMention{shapeAmountSymbol, amt, "", sym, pos}, true
	}
	return rawMention{}, false
}

// parseMentionAmount routes an amount token to the numeric or the
// spelled-out parser depending on its first rune.
func parseMentionAmount(token string) (float64, bool) {
	r, _ := utf8.DecodeRuneInString(token)
	if unicode.IsLetter(r) {
		return ParseNumberWords(token)
	}
	return ParseAmountWithSuffix(token)
}

// hasCleanBoundaries rejects matches glued to surrounding words: the
// rune before the mention and the rune after it must not be a letter or
// digit ("ban100 dollars", "$200x").
func hasCleanBoundaries(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isValidFloat(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
