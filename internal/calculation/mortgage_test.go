package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMortgageMonthlyPayment(t *testing.T) {
	payment := MortgageMonthlyPayment(decimal.NewFromInt(300000), decimal.NewFromInt(6), 30)

	assert.Equal(t, "1798.65", payment.StringFixed(2))
}

func TestMortgageMonthlyPayment_ZeroRate(t *testing.T) {
	payment := MortgageMonthlyPayment(decimal.NewFromInt(120000), decimal.Zero, 10)

	requireDecimal(t, "1000", payment)
}

func TestMortgageMonthlyPayment_DegenerateInputs(t *testing.T) {
	requireDecimal(t, "0", MortgageMonthlyPayment(decimal.Zero, decimal.NewFromInt(5), 30))
	requireDecimal(t, "0", MortgageMonthlyPayment(decimal.NewFromInt(-100), decimal.NewFromInt(5), 30))
	requireDecimal(t, "0", MortgageMonthlyPayment(decimal.NewFromInt(100000), decimal.NewFromInt(5), 0))
}
