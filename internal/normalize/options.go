package normalize

import (
	"finnhubmcp/internal/finnhub"
	"finnhubmcp/internal/models"
)

// OptionContract converts one raw contract into its normalized form,
// tagging it with the side of the bucket it came from. Zero bid/ask means
// "no quote" and becomes null; each Greek keeps its own nullability — one
// missing Greek does not affect the others.
func OptionContract(side string, raw finnhub.RawOptionContract) models.OptionContract {
	return models.OptionContract{
		ContractName:      raw.ContractName,
		Type:              side,
		Strike:            raw.Strike,
		ExpirationDate:    raw.ExpirationDate,
		LastPrice:         raw.LastPrice,
		Bid:               nilIfZero(raw.Bid),
		Ask:               nilIfZero(raw.Ask),
		Volume:            raw.Volume,
		OpenInterest:      raw.OpenInterest,
		ImpliedVolatility: raw.ImpliedVolatility,
		Delta:             raw.Delta,
		Gamma:             raw.Gamma,
		Theta:             raw.Theta,
		Vega:              raw.Vega,
		InTheMoney:        raw.InTheMoney,
	}
}

// BucketContracts flattens one expiration bucket into a single list, calls
// first, each contract tagged with its side.
func BucketContracts(bucket finnhub.RawExpirationBucket) []models.OptionContract {
	out := make([]models.OptionContract, 0, len(bucket.Options.Call)+len(bucket.Options.Put))
	for _, raw := range bucket.Options.Call {
		out = append(out, OptionContract(models.OptionTypeCall, raw))
	}
	for _, raw := range bucket.Options.Put {
		out = append(out, OptionContract(models.OptionTypePut, raw))
	}
	return out
}

// ExpirationSummary reduces one expiration bucket to its aggregate counts.
// The provider's explicit optionsCount wins when present; otherwise it is
// derived as callCount + putCount. The remaining aggregates default to zero
// when missing.
func ExpirationSummary(bucket finnhub.RawExpirationBucket) models.ExpirationSummary {
	callCount := len(bucket.Options.Call)
	putCount := len(bucket.Options.Put)

	optionsCount := bucket.OptionsCount
	if optionsCount == 0 {
		optionsCount = callCount + putCount
	}

	return models.ExpirationSummary{
		ExpirationDate:   bucket.ExpirationDate,
		OptionsCount:     optionsCount,
		CallCount:        callCount,
		PutCount:         putCount,
		CallVolume:       bucket.CallVolume,
		PutVolume:        bucket.PutVolume,
		CallOpenInterest: bucket.CallOpenInterest,
		PutOpenInterest:  bucket.PutOpenInterest,
	}
}
