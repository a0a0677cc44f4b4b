package models

// Per-tool success envelopes. Each envelope is constructed once per tool
// call and serialized as the tool result payload.

// DateRange is the effective date window of a calendar query after
// defaulting.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// EarningsResult is the calendar.earnings payload.
type EarningsResult struct {
	Data      []Earnings `json:"data"`
	Count     int        `json:"count"`
	DateRange DateRange  `json:"dateRange"`
}

// QuotesResult is the quote payload. Symbols for which the provider has no
// data are omitted rather than reported as errors.
type QuotesResult struct {
	Quotes []Quote `json:"quotes"`
}

// NewsResult is the news payload.
type NewsResult struct {
	News  []News `json:"news"`
	Count int    `json:"count"`
}

// ProfileResult is the stock.profile payload. Profile is null when the
// provider does not know the symbol.
type ProfileResult struct {
	Profile *Profile `json:"profile"`
}

// OptionsChain is the flattened contract list for one expiration date.
type OptionsChain struct {
	Options        []OptionContract `json:"options"`
	ExpirationDate string           `json:"expirationDate"`
}

// OptionsChainResult is the options.chain payload when an expiration date
// was requested.
type OptionsChainResult struct {
	Chain OptionsChain `json:"chain"`
}

// ExpirationsResult is the options.chain payload when no expiration date
// was requested: a summary per available expiration, meant for a follow-up
// call with one of the listed dates.
type ExpirationsResult struct {
	AvailableExpirationDates []ExpirationSummary `json:"availableExpirationDates"`
	TotalExpirations         int                 `json:"totalExpirations"`
}
