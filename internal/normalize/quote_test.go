package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"finnhubmcp/internal/finnhub"
)

func TestQuoteHasData(t *testing.T) {
	require.False(t, QuoteHasData(finnhub.RawQuote{}), "all-zero quote means no data")
	require.True(t, QuoteHasData(finnhub.RawQuote{C: 191.45}))
	require.True(t, QuoteHasData(finnhub.RawQuote{PC: 189.70}), "previous close alone is enough")
}

func TestQuote_Fields(t *testing.T) {
	got := Quote("AAPL", finnhub.RawQuote{
		C:  191.45,
		D:  fp(1.75),
		DP: fp(0.92),
		H:  192.2,
		L:  189.1,
		O:  190.0,
		PC: 189.70,
		T:  1714662000,
	})

	require.Equal(t, "AAPL", got.Symbol)
	require.Equal(t, 191.45, got.CurrentPrice)
	require.Equal(t, 1.75, got.Change)
	require.Equal(t, 0.92, got.PercentChange)
	require.Equal(t, 189.70, got.PreviousClose)
	require.Equal(t, int64(1714662000), got.Timestamp)
}

func TestQuote_NullChangeDefaultsToZero(t *testing.T) {
	got := Quote("AAPL", finnhub.RawQuote{C: 100, PC: 100})
	require.Zero(t, got.Change)
	require.Zero(t, got.PercentChange)
}
