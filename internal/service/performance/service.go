package performance

import (
	"context"
	"fmt"

	"github.com/workforcehq/workforce-backend-go/internal/domain/performance"
)

type PerformanceServiceImpl struct {
	metricRepo performance.Repository
}

func NewPerformanceService(metricRepo performance.Repository) performance.Service {
	return &PerformanceServiceImpl{metricRepo: metricRepo}
}

func (s *PerformanceServiceImpl) List(ctx context.Context) ([]performance.MetricResponse, error) {
	list, err := s.metricRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list metrics: %w", err)
	}
	return list, nil
}

func (s *PerformanceServiceImpl) Get(ctx context.Context, id string) (performance.MetricResponse, error) {
	result, err := s.metricRepo.GetByID(ctx, id)
	if err != nil {
		return performance.MetricResponse{}, fmt.Errorf("failed to get metric: %w", err)
	}
	if result == nil {
		return performance.MetricResponse{}, performance.ErrMetricNotFound
	}
	return *result, nil
}

// Create validates the payload before touching the repository, so a rejected
// score never reaches the store.
func (s *PerformanceServiceImpl) Create(ctx context.Context, req performance.CreateMetricRequest) (performance.MetricResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.MetricResponse{}, err
	}
	return s.metricRepo.Create(ctx, req)
}

func (s *PerformanceServiceImpl) Update(ctx context.Context, id string, req performance.UpdateMetricRequest) (performance.MetricResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.MetricResponse{}, err
	}
	return s.metricRepo.Update(ctx, id, req)
}

func (s *PerformanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.metricRepo.Delete(ctx, id)
}
