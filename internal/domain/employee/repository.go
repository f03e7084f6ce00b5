package employee

import "context"

// Repository is the employee slice of the generic repository contract.
// GetByID returns (nil, nil) when the id has no matching record.
type Repository interface {
	ListAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (*EmployeeResponse, error)
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}
