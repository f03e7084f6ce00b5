package department

import (
	"time"
)

type Department struct {
	ID          string
	Name        string
	Description *string
	ManagerName *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Projection
	EmployeeCount int64
}
