package calculation

import (
	"github.com/shopspring/decimal"
)

// MortgageMonthlyPayment computes the fixed monthly payment (principal
// and interest) for a fully amortizing loan:
//
//	M = P * r * (1+r)^n / ((1+r)^n - 1)
//
// with r the monthly rate and n the number of payments. Non-positive
// principal or term yields zero; a zero rate degenerates to straight
// principal division.
func MortgageMonthlyPayment(principal, annualRatePercent decimal.Decimal, years int) decimal.Decimal {
	if principal.LessThanOrEqual(decimal.Zero) || years <= 0 {
		return decimal.Zero
	}
	n := int64(years) * 12
	monthlyRate := annualRatePercent.Div(oneHundred).Div(twelve)
	if monthlyRate.IsZero() {
		return principal.Div(decimal.NewFromInt(n))
	}
	factor := decimal.NewFromInt(1).Add(monthlyRate).Pow(decimal.NewFromInt(n))
	return principal.Mul(monthlyRate).Mul(factor).Div(factor.Sub(decimal.NewFromInt(1)))
}
