package normalize

import (
	"fmt"

	"finnhubmcp/internal/finnhub"
	"finnhubmcp/internal/models"
)

// Earnings converts a raw earnings-calendar entry into its normalized form.
//
// surprise = actual - estimate, null unless both are present.
// surprisePercent = surprise / estimate * 100, null unless the estimate is
// present and non-zero. EPS and revenue follow the same rule.
func Earnings(raw finnhub.RawEarnings) models.Earnings {
	epsSurprise := surprise(raw.EpsActual, raw.EpsEstimate)
	revenueSurprise := surprise(raw.RevenueActual, raw.RevenueEstimate)

	reportTime := raw.Hour
	if reportTime == "" {
		reportTime = "unknown"
	}

	return models.Earnings{
		Symbol:                 raw.Symbol,
		Date:                   raw.Date,
		Quarter:                fmt.Sprintf("Q%d", raw.Quarter),
		Year:                   raw.Year,
		Time:                   reportTime,
		EpsActual:              raw.EpsActual,
		EpsEstimate:            raw.EpsEstimate,
		EpsSurprise:            epsSurprise,
		EpsSurprisePercent:     surprisePercent(epsSurprise, raw.EpsEstimate),
		RevenueActual:          raw.RevenueActual,
		RevenueEstimate:        raw.RevenueEstimate,
		RevenueSurprise:        revenueSurprise,
		RevenueSurprisePercent: surprisePercent(revenueSurprise, raw.RevenueEstimate),
	}
}

func surprise(actual, estimate *float64) *float64 {
	if actual == nil || estimate == nil {
		return nil
	}
	diff := *actual - *estimate
	return &diff
}

// surprisePercent guards against a zero estimate: the percentage is null
// even when the actual value is known.
func surprisePercent(surprise, estimate *float64) *float64 {
	if surprise == nil || estimate == nil || *estimate == 0 {
		return nil
	}
	pct := *surprise / *estimate * 100
	return &pct
}
