package normalize

import (
	"finnhubmcp/internal/finnhub"
	"finnhubmcp/internal/models"
)

// QuoteHasData reports whether the provider actually knows the symbol. An
// all-zero quote is the provider's "no data" answer; previous close and
// current price doubling as the existence signal is the upstream contract,
// zero is not a null marker here.
func QuoteHasData(raw finnhub.RawQuote) bool {
	return raw.PC != 0 || raw.C != 0
}

// Quote converts a raw quote into its normalized form. Change and percent
// change default to zero when the provider returns null.
func Quote(symbol string, raw finnhub.RawQuote) models.Quote {
	var change, percentChange float64
	if raw.D != nil {
		change = *raw.D
	}
	if raw.DP != nil {
		percentChange = *raw.DP
	}

	return models.Quote{
		Symbol:        symbol,
		CurrentPrice:  raw.C,
		Change:        change,
		PercentChange: percentChange,
		High:          raw.H,
		Low:           raw.L,
		Open:          raw.O,
		PreviousClose: raw.PC,
		Timestamp:     raw.T,
	}
}
