package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/workforcehq/workforce-backend-go/internal/domain/report"
)

type csvGenerator struct{}

func (csvGenerator) Render(ds report.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(ds.Columns); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := w.WriteAll(ds.Rows); err != nil {
		return nil, fmt.Errorf("failed to write csv rows: %w", err)
	}

	return buf.Bytes(), nil
}

func (csvGenerator) ContentType() string { return "text/csv" }

func (csvGenerator) Extension() string { return "csv" }
