package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nesaboz/finance/internal/domain"
)

func sampleProjection() *domain.Projection {
	return &domain.Projection{
		Years:       []int{2025, 2026, 2027},
		Investments: []decimal.Decimal{decimal.NewFromInt(10000), decimal.NewFromInt(10500), decimal.NewFromInt(11025)},
		NetIncome:   []decimal.Decimal{decimal.NewFromInt(5000), decimal.NewFromInt(5000), decimal.NewFromInt(5000)},
		Expenses:    []decimal.Decimal{decimal.NewFromInt(2400), decimal.NewFromInt(2400), decimal.NewFromInt(2400)},
		Profit:      []decimal.Decimal{decimal.NewFromInt(2600), decimal.NewFromInt(5200), decimal.NewFromInt(7800)},
	}
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "csv", "json", "chart"} {
		f := GetFormatterByName(name)
		require.NotNil(t, f, "Formatter %q should be registered", name)
		assert.Equal(t, name, f.Name())
	}

	assert.Nil(t, GetFormatterByName("html"), "Should return nil for unregistered formats")
}

func TestFormatterNames(t *testing.T) {
	names := FormatterNames()

	assert.Contains(t, names, "console")
	assert.Contains(t, names, "csv")
	assert.Contains(t, names, "json")
	assert.Contains(t, names, "chart")
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleProjection())

	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "2025")
	assert.Contains(t, text, "$10000.00")
	assert.Contains(t, text, "$7800.00")
	assert.Contains(t, text, "Final cumulative profit: $7800.00")
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleProjection())

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4, "Header plus one row per year")
	assert.Equal(t, "Year,Investments,NetIncome,Expenses,CumulativeProfit", lines[0])
	assert.Equal(t, "2025,10000.00,5000.00,2400.00,2600.00", lines[1])
	assert.Equal(t, "2027,11025.00,5000.00,2400.00,7800.00", lines[3])
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleProjection())

	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	years, ok := decoded["years"].([]any)
	require.True(t, ok)
	assert.Len(t, years, 3)
}

func TestChartFormatter(t *testing.T) {
	data, err := ChartFormatter{}.Format(sampleProjection())

	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "Investments")
	assert.Contains(t, text, "Cumulative profit")
	assert.Contains(t, text, "2025", "X axis should carry the first year label")
}

func TestChartFormatter_EmptyProjection(t *testing.T) {
	data, err := ChartFormatter{}.Format(&domain.Projection{})

	require.NoError(t, err)
	assert.Contains(t, string(data), "no data")
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "$-10.00", FormatCurrency(decimal.NewFromInt(-10)))
}
