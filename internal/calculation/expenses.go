package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nesaboz/finance/internal/domain"
)

var twelve = decimal.NewFromInt(12)

// AnnualExpenseAmount normalizes an expense to its contribution per
// active year: monthly expenses are multiplied by twelve, "annually"
// and "total" both count once per active year. Unrecognized types fall
// back to the once-per-year rule rather than erroring; the engine
// surfaces a warning for them.
func AnnualExpenseAmount(e domain.Expense) decimal.Decimal {
	if e.Type == domain.ExpenseTypeMonthly {
		return e.Amount.Mul(twelve)
	}
	return e.Amount
}

// ExpenseActiveIn reports whether the expense contributes in the given
// calendar year per its start/end window.
func ExpenseActiveIn(e domain.Expense, year int) bool {
	return activeIn(e.StartDate, e.EndDate, year)
}

// AnnualExpenses sums the annualized amounts of all expenses active in
// the given year.
func AnnualExpenses(expenses []domain.Expense, year int) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if !ExpenseActiveIn(e, year) {
			continue
		}
		total = total.Add(AnnualExpenseAmount(e))
	}
	return total
}
