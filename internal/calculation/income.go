package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nesaboz/finance/internal/domain"
)

// NetIncomeAmount returns the source's tax-adjusted contribution for
// the given year: zero when the year is outside the source's activity
// window, otherwise amount * (1 - rate/100). A missing tax rate means
// untaxed. Rates are applied as given; values above 100 produce a
// negative net, which is documented behavior rather than an error.
func NetIncomeAmount(src domain.IncomeSource, year int) decimal.Decimal {
	if !IncomeActiveIn(src, year) {
		return decimal.Zero
	}
	rate := src.EffectiveTaxRatePercent.Div(oneHundred)
	return src.Amount.Mul(decimal.NewFromInt(1).Sub(rate))
}

// IncomeActiveIn reports whether the source contributes in the given
// calendar year per its start/end window.
func IncomeActiveIn(src domain.IncomeSource, year int) bool {
	return activeIn(src.StartDate, src.EndDate, year)
}

// NetIncome sums the tax-adjusted contributions of all sources for the
// given year.
func NetIncome(sources []domain.IncomeSource, year int) decimal.Decimal {
	total := decimal.Zero
	for _, src := range sources {
		total = total.Add(NetIncomeAmount(src, year))
	}
	return total
}
