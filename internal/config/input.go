package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/nesaboz/finance/internal/domain"
)

// InputParser handles loading and validating plan files. Files are
// parsed as YAML, which also accepts JSON syntax.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile reads a plan snapshot from a YAML or JSON file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan file: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// ValidatePlan checks the structural constraints a projection run
// relies on. Content the engine degrades gracefully on (unknown
// expense types, malformed dates, out-of-range tax rates) passes
// validation; the engine warns about it instead.
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if plan == nil {
		return fmt.Errorf("plan is required")
	}
	if plan.ProjectionYears < 0 {
		return fmt.Errorf("projection_years must not be negative, got %d", plan.ProjectionYears)
	}
	for i, inv := range plan.Investments {
		if err := ip.validateInvestment(&inv); err != nil {
			return fmt.Errorf("investment %d (%s) validation failed: %w", i, inv.Name, err)
		}
	}
	for i, p := range plan.People {
		if err := ip.validatePerson(&p); err != nil {
			return fmt.Errorf("person %d (%s) validation failed: %w", i, p.Name, err)
		}
	}
	return nil
}

func (ip *InputParser) validateInvestment(inv *domain.Investment) error {
	if inv.Balance.LessThan(decimal.Zero) {
		return fmt.Errorf("balance must not be negative, got %s", inv.Balance)
	}
	return nil
}

func (ip *InputParser) validatePerson(p *domain.Person) error {
	if p.BirthYear <= 0 {
		return fmt.Errorf("birth_year is required")
	}
	if p.RetirementAge < 0 {
		return fmt.Errorf("retirement_age must not be negative, got %d", p.RetirementAge)
	}
	return nil
}
