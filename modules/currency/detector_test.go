package currency

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDetectorConverter(t *testing.T) *Converter {
	t.Helper()
	noop := func(w http.ResponseWriter, r *http.Request) {}
	return newTestConverter(t, noop, noop)
}

func TestParseTextForCurrencies(t *testing.T) {
	conv := newDetectorConverter(t)

	cases := []struct {
		text string
		want DetectedMention
	}{
		// Amount + currency word.
		{"дай 100 грн пожалуйста", DetectedMention{100, "UAH"}},
		{"it costs 100 dollars", DetectedMention{100, "USD"}},
		{"взял 2.5k грн", DetectedMention{2500, "UAH"}},
		{"у меня 1m2k300 долларов", DetectedMention{1002300, "USD"}},

		// Symbol-adjacent.
		{"price is $200", DetectedMention{200, "USD"}},
		{"отдал 200₴ вчера", DetectedMention{200, "UAH"}},
		{"€50 deposit", DetectedMention{50, "EUR"}},

		// Digits + multiplier word + currency word.
		{"he owes 5 million dollars", DetectedMention{5000000, "USD"}},
		{"долг 2 тысячи грн", DetectedMention{2000, "UAH"}},

		// Spelled-out numerals.
		{"send two hundred fifty dollars", DetectedMention{250, "USD"}},
		{"двадцать пять грн хватит", DetectedMention{25, "UAH"}},
		{"один миллион долларов", DetectedMention{1000000, "USD"}},

		// Crypto.
		{"got 5 тонов back", DetectedMention{5, "TON"}},
		{"earned 100 notcoin", DetectedMention{100, "NOT"}},
	}
	for _, tc := range cases {
		mentions := conv.ParseTextForCurrencies(tc.text)
		require.Len(t, mentions, 1, "text %q", tc.text)
		assert.InDelta(t, tc.want.Amount, mentions[0].Amount, 1e-6, "text %q", tc.text)
		assert.Equal(t, tc.want.CurrencyCode, mentions[0].CurrencyCode, "text %q", tc.text)
	}
}

func TestParseTextForCurrenciesEveryPattern(t *testing.T) {
	conv := newDetectorConverter(t)
	for _, def := range testDefinitions() {
		for _, pattern := range def.Patterns {
			mentions := conv.ParseTextForCurrencies("кинь 100 " + pattern + " сюда")
			require.Len(t, mentions, 1, "pattern %q", pattern)
			assert.Equal(t, def.Code, mentions[0].CurrencyCode, "pattern %q", pattern)
			assert.Equal(t, 100.0, mentions[0].Amount, "pattern %q", pattern)
		}
	}
}

func TestParseTextForCurrenciesBoundaries(t *testing.T) {
	conv := newDetectorConverter(t)
	for _, text := range []string{
		"ban100 dollars",
		"version2 usd0",
		"x$200y",
	} {
		assert.Empty(t, conv.ParseTextForCurrencies(text), "text %q", text)
	}
}

func TestParseTextForCurrenciesNoMention(t *testing.T) {
	conv := newDetectorConverter(t)
	for _, text := range []string{
		"",
		"hello there",
		"100",
		"$ alone",
		"гривна без суммы",
	} {
		assert.Empty(t, conv.ParseTextForCurrencies(text), "text %q", text)
	}
}

func TestParseTextForCurrenciesMultiple(t *testing.T) {
	conv := newDetectorConverter(t)
	mentions := conv.ParseTextForCurrencies("change 100 usd to грн, keep $50 aside")
	require.Len(t, mentions, 2)
	assert.Equal(t, "USD", mentions[0].CurrencyCode)
	assert.Equal(t, 100.0, mentions[0].Amount)
	assert.Equal(t, "USD", mentions[1].CurrencyCode)
	assert.Equal(t, 50.0, mentions[1].Amount)
}
