package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nesaboz/finance/internal/domain"
)

func TestGrowthSeries_TenPercent(t *testing.T) {
	inv := domain.Investment{
		Name:                "brokerage",
		Balance:             decimal.NewFromInt(1000),
		InterestRatePercent: decimal.NewFromInt(10),
	}

	series := GrowthSeries(inv, 3)

	require.Len(t, series, 4, "Should have years+1 entries")
	requireDecimal(t, "1000", series[0])
	requireDecimal(t, "1100", series[1])
	requireDecimal(t, "1210", series[2])
	requireDecimal(t, "1331", series[3])
}

func TestGrowthSeries_ZeroRateIsConstant(t *testing.T) {
	inv := domain.Investment{
		Balance:             decimal.NewFromInt(5250),
		InterestRatePercent: decimal.Zero,
	}

	series := GrowthSeries(inv, 10)

	require.Len(t, series, 11)
	for i, v := range series {
		assert.True(t, v.Equal(inv.Balance), "entry %d should stay at the balance, got %s", i, v)
	}
}

func TestGrowthSeries_YearZeroIsUnmodified(t *testing.T) {
	inv := domain.Investment{
		Balance:             decimal.RequireFromString("123.45"),
		InterestRatePercent: decimal.NewFromInt(7),
	}

	series := GrowthSeries(inv, 0)

	require.Len(t, series, 1, "Zero horizon should yield the single starting point")
	requireDecimal(t, "123.45", series[0])
}

func TestGrowthSeries_NegativeHorizonClampsToZero(t *testing.T) {
	inv := domain.Investment{Balance: decimal.NewFromInt(100)}

	series := GrowthSeries(inv, -3)

	require.Len(t, series, 1)
	requireDecimal(t, "100", series[0])
}

func TestGrowthSeries_NegativeRate(t *testing.T) {
	inv := domain.Investment{
		Balance:             decimal.NewFromInt(1000),
		InterestRatePercent: decimal.NewFromInt(-50),
	}

	series := GrowthSeries(inv, 2)

	requireDecimal(t, "500", series[1])
	requireDecimal(t, "250", series[2])
}

func TestGrowthSeries_RateBelowMinusHundredIsComputed(t *testing.T) {
	inv := domain.Investment{
		Balance:             decimal.NewFromInt(1000),
		InterestRatePercent: decimal.NewFromInt(-200),
	}

	series := GrowthSeries(inv, 2)

	requireDecimal(t, "-1000", series[1])
	requireDecimal(t, "1000", series[2])
}

func TestCompoundGrowthSeries_NegativePrincipal(t *testing.T) {
	series := CompoundGrowthSeries(decimal.NewFromInt(-1000), decimal.NewFromInt(10), 1)

	requireDecimal(t, "-1000", series[0])
	requireDecimal(t, "-1100", series[1])
}
