package normalize

import (
	"finnhubmcp/internal/finnhub"
	"finnhubmcp/internal/models"
)

// Profile converts a raw company profile into its normalized form, or nil
// when the provider does not know the symbol (empty ticker). Nil is the
// "not found" result, distinct from an upstream failure.
//
// Preference chains, primary key first:
//
//	industry: finnhubIndustry > industry
//	logo:     logo > logoUrl
//	ipoDate:  ipo > ipoDate
//	phone:    phone > phoneNumber
func Profile(raw finnhub.RawProfile) *models.Profile {
	if raw.Ticker == "" {
		return nil
	}

	return &models.Profile{
		Ticker:            raw.Ticker,
		Name:              raw.Name,
		Exchange:          raw.Exchange,
		Industry:          firstNonEmpty(raw.FinnhubIndustry, raw.Industry),
		Country:           raw.Country,
		Currency:          raw.Currency,
		MarketCap:         raw.MarketCapitalization,
		SharesOutstanding: raw.ShareOutstanding,
		IPODate:           firstNonEmpty(raw.IPO, raw.IPODate),
		Phone:             firstNonEmpty(raw.Phone, raw.PhoneNumber),
		WebURL:            raw.WebURL,
		Logo:              firstNonEmpty(raw.Logo, raw.LogoURL),
	}
}
