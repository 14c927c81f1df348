package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/nesaboz/finance/internal/domain"
)

// CSVFormatter writes one row per projected year.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(proj *domain.Projection) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Year", "Investments", "NetIncome", "Expenses", "CumulativeProfit"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i, year := range proj.Years {
		row := []string{
			strconv.Itoa(year),
			proj.Investments[i].StringFixed(2),
			proj.NetIncome[i].StringFixed(2),
			proj.Expenses[i].StringFixed(2),
			proj.Profit[i].StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
