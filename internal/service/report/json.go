package report

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/workforcehq/workforce-backend-go/internal/domain/report"
)

type jsonGenerator struct{}

func (jsonGenerator) Render(ds report.Dataset) ([]byte, error) {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dataset: %w", err)
	}
	return data, nil
}

func (jsonGenerator) ContentType() string { return "application/json" }

func (jsonGenerator) Extension() string { return "json" }
