package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"finnhubmcp/internal/finnhub"
	"finnhubmcp/internal/models"
)

func TestOptionContract_SideComesFromBucket(t *testing.T) {
	raw := finnhub.RawOptionContract{
		ContractName:   "AAPL240621C00190000",
		Strike:         190,
		ExpirationDate: "2024-06-21",
	}

	require.Equal(t, models.OptionTypeCall, OptionContract(models.OptionTypeCall, raw).Type)
	require.Equal(t, models.OptionTypePut, OptionContract(models.OptionTypePut, raw).Type)
}

func TestOptionContract_ZeroBidAskBecomeNull(t *testing.T) {
	got := OptionContract(models.OptionTypeCall, finnhub.RawOptionContract{
		Bid: 0,
		Ask: 2.35,
	})

	require.Nil(t, got.Bid)
	require.NotNil(t, got.Ask)
	require.Equal(t, 2.35, *got.Ask)
}

func TestOptionContract_GreeksIndependentlyNullable(t *testing.T) {
	got := OptionContract(models.OptionTypePut, finnhub.RawOptionContract{
		Delta: fp(-0.45),
		Vega:  fp(0.12),
		// Gamma and Theta absent.
	})

	require.NotNil(t, got.Delta)
	require.Equal(t, -0.45, *got.Delta)
	require.NotNil(t, got.Vega)
	require.Nil(t, got.Gamma)
	require.Nil(t, got.Theta)
}

func TestBucketContracts_FlattensCallsThenPuts(t *testing.T) {
	bucket := finnhub.RawExpirationBucket{
		ExpirationDate: "2024-06-21",
		Options: finnhub.RawOptionSides{
			Call: []finnhub.RawOptionContract{
				{ContractName: "C1"}, {ContractName: "C2"},
			},
			Put: []finnhub.RawOptionContract{
				{ContractName: "P1"}, {ContractName: "P2"}, {ContractName: "P3"},
			},
		},
	}

	got := BucketContracts(bucket)
	require.Len(t, got, 5)
	require.Equal(t, models.OptionTypeCall, got[0].Type)
	require.Equal(t, models.OptionTypeCall, got[1].Type)
	require.Equal(t, models.OptionTypePut, got[2].Type)
	require.Equal(t, "P3", got[4].ContractName)
}

func TestExpirationSummary_DerivedCountWhenAggregateMissing(t *testing.T) {
	got := ExpirationSummary(finnhub.RawExpirationBucket{
		ExpirationDate: "2024-06-21",
		Options: finnhub.RawOptionSides{
			Call: make([]finnhub.RawOptionContract, 3),
			Put:  make([]finnhub.RawOptionContract, 5),
		},
	})

	require.Equal(t, 8, got.OptionsCount)
	require.Equal(t, 3, got.CallCount)
	require.Equal(t, 5, got.PutCount)
}

func TestExpirationSummary_ExplicitCountWins(t *testing.T) {
	got := ExpirationSummary(finnhub.RawExpirationBucket{
		ExpirationDate: "2024-06-21",
		OptionsCount:   42,
		Options: finnhub.RawOptionSides{
			Call: make([]finnhub.RawOptionContract, 3),
			Put:  make([]finnhub.RawOptionContract, 5),
		},
	})

	require.Equal(t, 42, got.OptionsCount)
}

func TestExpirationSummary_MissingAggregatesDefaultToZero(t *testing.T) {
	got := ExpirationSummary(finnhub.RawExpirationBucket{ExpirationDate: "2024-06-21"})

	require.Zero(t, got.CallVolume)
	require.Zero(t, got.PutVolume)
	require.Zero(t, got.CallOpenInterest)
	require.Zero(t, got.PutOpenInterest)
	require.Zero(t, got.OptionsCount)
}
