package domain

import (
	"github.com/shopspring/decimal"
)

// Projection holds the yearly series produced by a projection run. All
// slices share the Years axis: identical length, index i belongs to
// Years[i].
type Projection struct {
	// Years is the calendar-year axis, current year through
	// current year + horizon inclusive.
	Years []int `json:"years"`

	// Investments is the summed compound value of all accounts per year.
	Investments []decimal.Decimal `json:"investments"`

	// NetIncome is the tax-adjusted income total per year.
	NetIncome []decimal.Decimal `json:"netIncome"`

	// Expenses is the annualized expense total per year.
	Expenses []decimal.Decimal `json:"expenses"`

	// Profit is the cumulative sum of (net income - expenses) through
	// each year. Profit[0] already includes year 0's net.
	Profit []decimal.Decimal `json:"profit"`
}

// Len returns the number of points on the shared year axis.
func (p *Projection) Len() int { return len(p.Years) }

// FinalInvestments returns the last entry of the investment series, or
// zero for an empty projection.
func (p *Projection) FinalInvestments() decimal.Decimal {
	if len(p.Investments) == 0 {
		return decimal.Zero
	}
	return p.Investments[len(p.Investments)-1]
}

// FinalProfit returns the last entry of the cumulative profit series,
// or zero for an empty projection.
func (p *Projection) FinalProfit() decimal.Decimal {
	if len(p.Profit) == 0 {
		return decimal.Zero
	}
	return p.Profit[len(p.Profit)-1]
}

// AssetsProjection holds the total-assets series: investment balances
// compounding while a cash bucket accrues contributions and pays the
// household's annual expenses.
type AssetsProjection struct {
	Years []int             `json:"years"`
	Total []decimal.Decimal `json:"total"`
}

// FinalTotal returns the last entry of the total-assets series, or zero
// for an empty projection.
func (a *AssetsProjection) FinalTotal() decimal.Decimal {
	if len(a.Total) == 0 {
		return decimal.Zero
	}
	return a.Total[len(a.Total)-1]
}
