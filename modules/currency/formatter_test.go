package currency

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPluralForm(t *testing.T) {
	cases := []struct {
		n    uint64
		want string
	}{
		{1, "гривна"}, {21, "гривна"}, {101, "гривна"},
		{2, "гривны"}, {3, "гривны"}, {4, "гривны"}, {22, "гривны"},
		{0, "гривен"}, {5, "гривен"}, {10, "гривен"},
		{11, "гривен"}, {12, "гривен"}, {14, "гривен"}, {19, "гривен"},
		{111, "гривен"}, {112, "гривен"},
		{100, "гривен"}, {25, "гривен"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, pluralForm(tc.n, "гривна", "гривны", "гривен"), "n=%d", tc.n)
	}
}

func testRateTable() *RateTable {
	return &RateTable{
		FetchedAt: time.Now(),
		Base:      "UAH",
		Prices: map[string]float64{
			"UAH": 1,
			"USD": 40,
			"EUR": 44,
			"TON": 200,
		},
	}
}

func TestFormatConversionResult(t *testing.T) {
	conv := newDetectorConverter(t)

	block, err := conv.FormatConversionResult(
		DetectedMention{Amount: 2000, CurrencyCode: "UAH"},
		testRateTable(),
		[]string{"UAH", "USD", "EUR"},
	)
	require.NoError(t, err)

	lines := strings.Split(block, "\n")
	require.Len(t, lines, 4, "header, blank, two targets")

	assert.Contains(t, lines[0], "🇺🇦")
	assert.Contains(t, lines[0], "2,000.00")
	assert.Contains(t, lines[0], "гривен")
	assert.Empty(t, lines[1])
	assert.Contains(t, lines[2], "50.00")
	assert.Contains(t, lines[2], "долларов")
	assert.Contains(t, lines[3], "45.45")
	assert.Contains(t, lines[3], "евро")
}

func TestFormatConversionResultSingularSource(t *testing.T) {
	conv := newDetectorConverter(t)

	block, err := conv.FormatConversionResult(
		DetectedMention{Amount: 1, CurrencyCode: "USD"},
		testRateTable(),
		[]string{"UAH"},
	)
	require.NoError(t, err)
	assert.Contains(t, block, "1.00$ доллар")
	assert.Contains(t, block, "40.00₴ гривен")
}

func TestFormatConversionResultSkipsMissingRate(t *testing.T) {
	conv := newDetectorConverter(t)
	table := testRateTable()
	delete(table.Prices, "EUR")

	block, err := conv.FormatConversionResult(
		DetectedMention{Amount: 100, CurrencyCode: "USD"},
		table,
		[]string{"UAH", "EUR"},
	)
	require.NoError(t, err)
	assert.Contains(t, block, "гривен")
	assert.NotContains(t, block, "евро")
}

func TestFormatConversionResultUnknownSource(t *testing.T) {
	conv := newDetectorConverter(t)

	_, err := conv.FormatConversionResult(
		DetectedMention{Amount: 1, CurrencyCode: "XXX"},
		testRateTable(),
		[]string{"UAH"},
	)
	var notFound *CurrencyNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "XXX", notFound.Code)
}

func TestConvertAmountRoundTrip(t *testing.T) {
	table := testRateTable()

	uah, err := convertAmount(2000, "UAH", "USD", table)
	require.NoError(t, err)
	back, err := convertAmount(uah, "USD", "UAH", table)
	require.NoError(t, err)
	assert.InDelta(t, 2000, back, 1e-9)

	same, err := convertAmount(123, "USD", "USD", table)
	require.NoError(t, err)
	assert.Equal(t, 123.0, same)

	_, err = convertAmount(1, "USD", "GBP", table)
	var missing *RateNotFoundError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "GBP", missing.Code)
}
