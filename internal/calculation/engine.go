package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nesaboz/finance/internal/domain"
)

// Engine runs projections over a plan snapshot. It holds no state
// beyond its logger: every run is a pure function of the plan, the
// horizon, and the injected current year, so identical inputs always
// produce identical series.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger installs a custom logger; nil restores the no-op logger.
func (e *Engine) SetLogger(logger Logger) {
	if logger == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = logger
}

// Project computes the yearly series for a plan over the given horizon.
// The year axis runs from currentYear through currentYear+horizon
// inclusive, so every series has horizon+1 points; a horizon of zero or
// less yields the single current-year point. A plan with no entries
// produces zero-valued series of full length, not an error.
func (e *Engine) Project(plan *domain.Plan, horizonYears, currentYear int) *domain.Projection {
	if horizonYears < 0 {
		horizonYears = 0
	}
	n := horizonYears + 1

	proj := &domain.Projection{
		Years:       make([]int, n),
		Investments: make([]decimal.Decimal, n),
		NetIncome:   make([]decimal.Decimal, n),
		Expenses:    make([]decimal.Decimal, n),
		Profit:      make([]decimal.Decimal, n),
	}
	for i := 0; i < n; i++ {
		proj.Years[i] = currentYear + i
	}

	e.warnUnknownExpenseTypes(plan.Expenses)

	for i := range proj.Investments {
		proj.Investments[i] = decimal.Zero
	}
	for _, inv := range plan.Investments {
		series := GrowthSeries(inv, horizonYears)
		for i, v := range series {
			proj.Investments[i] = proj.Investments[i].Add(v)
		}
	}

	// Profit accumulates in year order; each year's net folds into the
	// running total so Profit[0] already carries year 0's net.
	running := decimal.Zero
	for i, year := range proj.Years {
		proj.NetIncome[i] = NetIncome(plan.Income, year)
		proj.Expenses[i] = AnnualExpenses(plan.Expenses, year)
		running = running.Add(proj.NetIncome[i].Sub(proj.Expenses[i]))
		proj.Profit[i] = running
	}

	return proj
}

func (e *Engine) warnUnknownExpenseTypes(expenses []domain.Expense) {
	for _, exp := range expenses {
		switch exp.Type {
		case domain.ExpenseTypeMonthly, domain.ExpenseTypeAnnually, domain.ExpenseTypeTotal:
		default:
			e.Logger.Warnf("expense %q has unknown type %q, treating as once per active year", exp.Name, exp.Type)
		}
	}
}
