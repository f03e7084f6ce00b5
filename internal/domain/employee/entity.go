package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  *string
	Address      *string
	DateOfBirth  *time.Time
	JoiningDate  time.Time
	Position     string
	Salary       decimal.Decimal
	DepartmentID string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Projection
	DepartmentName string
}
