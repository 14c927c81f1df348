package output

import (
	"encoding/json"

	"github.com/nesaboz/finance/internal/domain"
)

// JSONFormatter marshals the projection for machine consumers.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(proj *domain.Projection) ([]byte, error) {
	return json.MarshalIndent(proj, "", "  ")
}
