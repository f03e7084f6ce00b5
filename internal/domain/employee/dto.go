package employee

import (
	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	Address      *string `json:"address,omitempty"`
	DateOfBirth  *string `json:"date_of_birth,omitempty"`
	JoiningDate  string  `json:"joining_date"`
	Position     string  `json:"position"`
	Salary       string  `json:"salary"`
	DepartmentID string  `json:"department_id"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}
	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone number must be 8-15 digits",
		})
	}
	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be in YYYY-MM-DD format",
			})
		}
	}
	if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "joining_date",
			Message: "joining_date must be in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}
	if validator.IsEmpty(r.Salary) {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary is required",
		})
	}
	if !validator.IsValidUUID(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a valid id",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	Address      *string `json:"address,omitempty"`
	DateOfBirth  *string `json:"date_of_birth,omitempty"`
	JoiningDate  string  `json:"joining_date"`
	Position     string  `json:"position"`
	Salary       string  `json:"salary"`
	DepartmentID string  `json:"department_id"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	create := CreateEmployeeRequest{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		PhoneNumber:  r.PhoneNumber,
		Address:      r.Address,
		DateOfBirth:  r.DateOfBirth,
		JoiningDate:  r.JoiningDate,
		Position:     r.Position,
		Salary:       r.Salary,
		DepartmentID: r.DepartmentID,
	}
	return create.Validate()
}

// EmployeeResponse is the transport shape of an employee. DepartmentName is
// projected from the departments join.
type EmployeeResponse struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	Address        *string `json:"address,omitempty"`
	DateOfBirth    *string `json:"date_of_birth,omitempty"`
	JoiningDate    string  `json:"joining_date"`
	Position       string  `json:"position"`
	Salary         string  `json:"salary"`
	DepartmentID   string  `json:"department_id"`
	DepartmentName string  `json:"department_name"`
	IsActive       bool    `json:"is_active"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}
