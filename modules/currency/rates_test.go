package currency

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRateTableMergesSources(t *testing.T) {
	conv := newTestConverter(t, fiatTestHandler(t), cryptoTestHandler(t))

	table, err := conv.fetchRateTable(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "UAH", table.Base)
	assert.InDelta(t, 1.0, table.Prices["UAH"], 1e-9)
	assert.InDelta(t, 40.0, table.Prices["USD"], 1e-6)
	assert.InDelta(t, 200.0, table.Prices["TON"], 1e-9)
	assert.InDelta(t, 0.8, table.Prices["NOT"], 1e-9)
	assert.False(t, table.FetchedAt.IsZero())
}

func TestFetchRateTableCryptoDegrades(t *testing.T) {
	conv := newTestConverter(t, fiatTestHandler(t),
		func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) })

	table, err := conv.fetchRateTable(context.Background())
	require.NoError(t, err, "fiat alone must be enough")

	assert.InDelta(t, 40.0, table.Prices["USD"], 1e-6)
	_, hasTON := table.Prices["TON"]
	assert.False(t, hasTON)
}

func TestFetchRateTableFiatFailureIsFatal(t *testing.T) {
	conv := newTestConverter(t,
		func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadGateway) },
		cryptoTestHandler(t))

	_, err := conv.fetchRateTable(context.Background())
	require.Error(t, err)
}

func TestRateCacheServesWithinTTL(t *testing.T) {
	fiatCalls := 0
	conv := newTestConverter(t,
		func(w http.ResponseWriter, r *http.Request) {
			fiatCalls++
			fiatTestHandler(t)(w, r)
		},
		cryptoTestHandler(t))

	first, err := conv.getRates(context.Background())
	require.NoError(t, err)
	second, err := conv.getRates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, fiatCalls)
	assert.Equal(t, first.FetchedAt, second.FetchedAt, "same snapshot within TTL")
}

func TestRateCacheDoesNotCacheFailures(t *testing.T) {
	fail := true
	conv := newTestConverter(t,
		func(w http.ResponseWriter, r *http.Request) {
			if fail {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			fiatTestHandler(t)(w, r)
		},
		cryptoTestHandler(t))

	_, err := conv.getRates(context.Background())
	require.Error(t, err)

	fail = false
	table, err := conv.getRates(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 40.0, table.Prices["USD"], 1e-6)
}
