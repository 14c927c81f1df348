package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nesaboz/finance/internal/domain"
)

// GrowthSeries returns the investment's annual compound value series:
// years+1 entries where entry t is the value after t full years of
// growth and entry 0 is the starting balance unmodified. Negative
// horizons are treated as zero. Negative balances and rates below
// -100% are computed as-is, never rejected.
func GrowthSeries(inv domain.Investment, years int) []decimal.Decimal {
	return CompoundGrowthSeries(inv.Balance, inv.InterestRatePercent, years)
}

// CompoundGrowthSeries computes annual compound growth of a principal
// at a fixed percentage rate, including the year-0 starting value.
func CompoundGrowthSeries(principal, annualRatePercent decimal.Decimal, years int) []decimal.Decimal {
	if years < 0 {
		years = 0
	}
	factor := decimal.NewFromInt(1).Add(annualRatePercent.Div(oneHundred))
	series := make([]decimal.Decimal, 0, years+1)
	value := principal
	series = append(series, value)
	for t := 1; t <= years; t++ {
		value = value.Mul(factor)
		series = append(series, value)
	}
	return series
}

var oneHundred = decimal.NewFromInt(100)
