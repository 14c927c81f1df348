package output

import (
	"bytes"
	"fmt"

	"github.com/nesaboz/finance/internal/domain"
)

// ConsoleFormatter renders the projection as a plain text table.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(proj *domain.Projection) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintln(buf, "FINANCIAL PROJECTION")
	fmt.Fprintln(buf, "====================")
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "%-6s  %16s  %16s  %16s  %16s\n", "Year", "Investments", "Net Income", "Expenses", "Cum. Profit")
	for i, year := range proj.Years {
		fmt.Fprintf(buf, "%-6d  %16s  %16s  %16s  %16s\n",
			year,
			FormatCurrency(proj.Investments[i]),
			FormatCurrency(proj.NetIncome[i]),
			FormatCurrency(proj.Expenses[i]),
			FormatCurrency(proj.Profit[i]),
		)
	}
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "Final investment value: %s\n", FormatCurrency(proj.FinalInvestments()))
	fmt.Fprintf(buf, "Final cumulative profit: %s\n", FormatCurrency(proj.FinalProfit()))

	return buf.Bytes(), nil
}
