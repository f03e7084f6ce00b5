package performance

import "context"

// Service defines business logic for performance metric operations
type Service interface {
	List(ctx context.Context) ([]MetricResponse, error)
	Get(ctx context.Context, id string) (MetricResponse, error)
	Create(ctx context.Context, req CreateMetricRequest) (MetricResponse, error)
	Update(ctx context.Context, id string, req UpdateMetricRequest) (MetricResponse, error)
	Delete(ctx context.Context, id string) error
}
