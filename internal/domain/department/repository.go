package department

import "context"

// Repository is the department slice of the generic repository contract.
type Repository interface {
	ListAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (*DepartmentResponse, error)
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}
