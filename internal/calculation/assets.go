package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nesaboz/finance/internal/domain"
)

// ProjectAssets computes the total-assets series: every investment
// compounds at its own rate while a cash bucket collects 401k
// contributions (each person contributes until the year they reach
// retirement age), 529 contributions, and pays the plan's annual
// expenses. Entry 0 is the sum of starting balances; entry t is the
// invested total plus cash after t years.
func (e *Engine) ProjectAssets(plan *domain.Plan, horizonYears, currentYear int) *domain.AssetsProjection {
	if horizonYears < 0 {
		horizonYears = 0
	}
	n := horizonYears + 1

	balances := make([]decimal.Decimal, len(plan.Investments))
	factors := make([]decimal.Decimal, len(plan.Investments))
	for i, inv := range plan.Investments {
		balances[i] = inv.Balance
		factors[i] = decimal.NewFromInt(1).Add(inv.InterestRatePercent.Div(oneHundred))
	}

	contributionYears := make([]int, len(plan.People))
	for i, p := range plan.People {
		contributionYears[i] = p.YearsToRetirement(currentYear)
	}
	annual529 := decimal.Zero
	for _, c := range plan.Children {
		annual529 = annual529.Add(c.Annual529Contribution)
	}

	ap := &domain.AssetsProjection{
		Years: make([]int, n),
		Total: make([]decimal.Decimal, n),
	}
	for i := 0; i < n; i++ {
		ap.Years[i] = currentYear + i
	}

	cash := decimal.Zero
	ap.Total[0] = sumDecimals(balances)
	for t := 1; t <= horizonYears; t++ {
		contribution := annual529
		for i, p := range plan.People {
			if t <= contributionYears[i] {
				contribution = contribution.Add(p.Retirement401kContribution)
			}
		}
		cash = cash.Add(contribution).Sub(AnnualExpenses(plan.Expenses, currentYear+t))
		for i := range balances {
			balances[i] = balances[i].Mul(factors[i])
		}
		ap.Total[t] = sumDecimals(balances).Add(cash)
	}
	return ap
}

func sumDecimals(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
