package performance

import "context"

// Repository is the performance-metric slice of the generic repository
// contract.
type Repository interface {
	ListAll(ctx context.Context) ([]MetricResponse, error)
	GetByID(ctx context.Context, id string) (*MetricResponse, error)
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, req CreateMetricRequest) (MetricResponse, error)
	Update(ctx context.Context, id string, req UpdateMetricRequest) (MetricResponse, error)
	Delete(ctx context.Context, id string) error
}
