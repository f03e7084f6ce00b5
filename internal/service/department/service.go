package department

import (
	"context"
	"fmt"

	"github.com/workforcehq/workforce-backend-go/internal/domain/department"
)

type DepartmentServiceImpl struct {
	departmentRepo department.Repository
}

func NewDepartmentService(departmentRepo department.Repository) department.Service {
	return &DepartmentServiceImpl{departmentRepo: departmentRepo}
}

func (s *DepartmentServiceImpl) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	list, err := s.departmentRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return list, nil
}

func (s *DepartmentServiceImpl) Get(ctx context.Context, id string) (department.DepartmentResponse, error) {
	result, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to get department: %w", err)
	}
	if result == nil {
		return department.DepartmentResponse{}, department.ErrDepartmentNotFound
	}
	return *result, nil
}

func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}
	return s.departmentRepo.Create(ctx, req)
}

func (s *DepartmentServiceImpl) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}
	return s.departmentRepo.Update(ctx, id, req)
}

func (s *DepartmentServiceImpl) Delete(ctx context.Context, id string) error {
	return s.departmentRepo.Delete(ctx, id)
}
