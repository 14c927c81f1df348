package output

import (
	"github.com/shopspring/decimal"

	"github.com/nesaboz/finance/internal/domain"
)

// Formatter renders a projection into a byte slice for one output
// format.
type Formatter interface {
	Name() string
	Format(proj *domain.Projection) ([]byte, error)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
	ChartFormatter{},
}

// GetFormatterByName returns the formatter registered under the given
// name, or nil if no such formatter exists.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered formatter names.
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	return names
}

// FormatCurrency formats a decimal amount as a dollar string.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
