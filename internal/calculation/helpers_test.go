package calculation

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

// requireDecimal fails the test unless got equals the decimal literal
// want.
func requireDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		if len(msgAndArgs) > 0 {
			t.Fatalf("expected %s, got %s: %s", want, got, fmt.Sprintln(msgAndArgs...))
		}
		t.Fatalf("expected %s, got %s", want, got)
	}
}

// TestLogger records warnings so tests can assert on them.
type TestLogger struct {
	Warnings []string
}

func (l *TestLogger) Debugf(format string, args ...any) {}
func (l *TestLogger) Infof(format string, args ...any)  {}
func (l *TestLogger) Warnf(format string, args ...any) {
	l.Warnings = append(l.Warnings, fmt.Sprintf(format, args...))
}
func (l *TestLogger) Errorf(format string, args ...any) {}
