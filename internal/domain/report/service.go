package report

import "context"

// Service is the report pipeline: resolve the format generator, gather the
// dataset, hand back the rendered bytes unchanged. Unknown formats fail
// before any dataset query runs.
type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (Document, error)
	Formats() []string
}
