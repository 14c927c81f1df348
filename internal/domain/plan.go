package domain

import (
	"github.com/shopspring/decimal"
)

// Expense annualization types. Anything else falls back to the
// once-per-year rule (see ExpenseTypeTotal).
const (
	ExpenseTypeMonthly  = "monthly"
	ExpenseTypeAnnually = "annually"
	ExpenseTypeTotal    = "total"
)

// Investment is a single account that compounds annually at a fixed rate.
type Investment struct {
	Name                string          `yaml:"name" json:"name"`
	Balance             decimal.Decimal `yaml:"balance" json:"balance"`
	InterestRatePercent decimal.Decimal `yaml:"interest_rate_percent" json:"interest_rate_percent"`
	ShowOnChart         bool            `yaml:"show_on_chart" json:"show_on_chart"`

	// Optional metadata, preserved but irrelevant to calculations.
	Taxable   *bool  `yaml:"taxable,omitempty" json:"taxable,omitempty"`
	Broker    string `yaml:"broker,omitempty" json:"broker,omitempty"`
	UpdatedAt string `yaml:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Expense is a recurring or one-off outflow. Type selects annualization:
// "monthly" contributes amount*12 per active year; "annually" and "total"
// both contribute the amount once per every active year. A one-off "total"
// therefore recurs while active, which mirrors the behavior this engine
// replaces and is kept deliberately.
type Expense struct {
	Name      string          `yaml:"name" json:"name"`
	Amount    decimal.Decimal `yaml:"expense" json:"expense"`
	Type      string          `yaml:"type" json:"type"`
	StartDate string          `yaml:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate   string          `yaml:"end_date,omitempty" json:"end_date,omitempty"`
	UpdatedAt string          `yaml:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// IncomeSource is a yearly income stream, optionally taxed at a flat
// effective rate and optionally bounded by start/end dates. Type is
// informational only and does not affect the math.
type IncomeSource struct {
	Name                    string          `yaml:"name" json:"name"`
	Amount                  decimal.Decimal `yaml:"income" json:"income"`
	Type                    string          `yaml:"type" json:"type"`
	EffectiveTaxRatePercent decimal.Decimal `yaml:"effective_tax_rate_percent" json:"effective_tax_rate_percent"`
	StartDate               string          `yaml:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate                 string          `yaml:"end_date,omitempty" json:"end_date,omitempty"`
	UpdatedAt               string          `yaml:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Person is an adult household member with a retirement contribution
// window: 401k contributions accrue until the year they reach
// retirement age.
type Person struct {
	Name                       string          `yaml:"name" json:"name"`
	BirthYear                  int             `yaml:"birth_year" json:"birth_year"`
	RetirementAge              int             `yaml:"retirement_age" json:"retirement_age"`
	AnnualSalary               decimal.Decimal `yaml:"annual_salary" json:"annual_salary"`
	Retirement401kContribution decimal.Decimal `yaml:"retirement_401k_contribution" json:"retirement_401k_contribution"`
	UpdatedAt                  string          `yaml:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// YearsToRetirement returns how many whole years remain until the
// person reaches retirement age, floored at zero.
func (p Person) YearsToRetirement(currentYear int) int {
	remaining := p.RetirementAge - (currentYear - p.BirthYear)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Child is a household member with a 529 contribution that accrues for
// every projected year.
type Child struct {
	Name                  string          `yaml:"name" json:"name"`
	BirthYear             int             `yaml:"birth_year" json:"birth_year"`
	Annual529Contribution decimal.Decimal `yaml:"annual_529_contribution" json:"annual_529_contribution"`
	UpdatedAt             string          `yaml:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Plan is a read-only snapshot of a household's finances. A projection
// run never mutates it.
type Plan struct {
	Investments []Investment   `yaml:"investments" json:"investments"`
	Income      []IncomeSource `yaml:"income" json:"income"`
	Expenses    []Expense      `yaml:"expenses" json:"expenses"`
	People      []Person       `yaml:"people" json:"people"`
	Children    []Child        `yaml:"children" json:"children"`

	// ProjectionYears is the default horizon; callers may override it
	// per run.
	ProjectionYears int `yaml:"projection_years" json:"projection_years"`
}
