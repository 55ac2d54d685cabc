package output

import (
	"encoding/json"

	"github.com/lifeline/savings-calculator/internal/domain"
)

// JSONFormatter emits the full report envelope as indented JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
