package breakeven

import (
	"github.com/shopspring/decimal"

	"github.com/nesaboz/finance/internal/calculation"
	"github.com/nesaboz/finance/internal/domain"
)

// Result reports whether a threshold was crossed within the projection
// horizon, and where.
type Result struct {
	Reached bool            `json:"reached"`
	Year    int             `json:"year"`
	Index   int             `json:"index"`
	Value   decimal.Decimal `json:"value"`
}

// Solver scans engine projections for threshold crossings. Not
// reaching a threshold within the horizon is a result state, never an
// error.
type Solver struct {
	Engine *calculation.Engine
}

// NewSolver creates a solver over the given engine; a nil engine gets
// a default one.
func NewSolver(engine *calculation.Engine) *Solver {
	if engine == nil {
		engine = calculation.NewEngine()
	}
	return &Solver{Engine: engine}
}

// FirstProfitableYear finds the first projected year whose cumulative
// profit is zero or positive.
func (s *Solver) FirstProfitableYear(plan *domain.Plan, horizonYears, currentYear int) Result {
	proj := s.Engine.Project(plan, horizonYears, currentYear)
	for i, value := range proj.Profit {
		if value.GreaterThanOrEqual(decimal.Zero) {
			return Result{Reached: true, Year: proj.Years[i], Index: i, Value: value}
		}
	}
	return notReached(proj.Years, proj.Profit)
}

// FirstYearAssetsReach finds the first projected year whose total
// assets meet or exceed the target.
func (s *Solver) FirstYearAssetsReach(plan *domain.Plan, horizonYears, currentYear int, target decimal.Decimal) Result {
	ap := s.Engine.ProjectAssets(plan, horizonYears, currentYear)
	for i, value := range ap.Total {
		if value.GreaterThanOrEqual(target) {
			return Result{Reached: true, Year: ap.Years[i], Index: i, Value: value}
		}
	}
	return notReached(ap.Years, ap.Total)
}

func notReached(years []int, series []decimal.Decimal) Result {
	r := Result{Reached: false, Index: -1}
	if n := len(series); n > 0 {
		r.Year = years[n-1]
		r.Value = series[n-1]
	}
	return r
}
