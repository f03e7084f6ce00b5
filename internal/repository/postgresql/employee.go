package postgresql

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

const employeeBaseQuery = `
	SELECT e.id, e.first_name, e.last_name, e.email, e.phone_number, e.address,
	       e.date_of_birth, e.joining_date, e.position, e.salary, e.department_id,
	       e.is_active, e.created_at, e.updated_at,
	       d.name AS department_name
	FROM employees e
	JOIN departments d ON d.id = e.department_id`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.PhoneNumber,
		&emp.Address, &emp.DateOfBirth, &emp.JoiningDate, &emp.Position,
		&emp.Salary, &emp.DepartmentID, &emp.IsActive,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DepartmentName,
	)
	return emp, err
}

func employeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	var dob *string
	if emp.DateOfBirth != nil {
		formatted := emp.DateOfBirth.Format("2006-01-02")
		dob = &formatted
	}

	return employee.EmployeeResponse{
		ID:             emp.ID,
		FirstName:      emp.FirstName,
		LastName:       emp.LastName,
		Email:          emp.Email,
		PhoneNumber:    emp.PhoneNumber,
		Address:        emp.Address,
		DateOfBirth:    dob,
		JoiningDate:    emp.JoiningDate.Format("2006-01-02"),
		Position:       emp.Position,
		Salary:         emp.Salary.String(),
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		IsActive:       emp.IsActive,
		CreatedAt:      emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:      emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func newEmployeeRecord(req employee.CreateEmployeeRequest) (employee.Employee, error) {
	emp := employee.Employee{
		ID:           uuid.Must(uuid.NewV7()).String(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		Position:     req.Position,
		DepartmentID: req.DepartmentID,
		IsActive:     true,
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	joining, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("parse joining_date: %w", err)
	}
	emp.JoiningDate = joining

	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("parse date_of_birth: %w", err)
		}
		emp.DateOfBirth = &dob
	}

	salary, err := decimal.NewFromString(req.Salary)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("parse salary: %w", err)
	}
	emp.Salary = salary

	return emp, nil
}

func applyEmployeeUpdate(emp *employee.Employee, req employee.UpdateEmployeeRequest) error {
	emp.FirstName = req.FirstName
	emp.LastName = req.LastName
	emp.Email = req.Email
	emp.PhoneNumber = req.PhoneNumber
	emp.Address = req.Address
	emp.Position = req.Position
	emp.DepartmentID = req.DepartmentID
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	joining, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		return fmt.Errorf("parse joining_date: %w", err)
	}
	emp.JoiningDate = joining

	emp.DateOfBirth = nil
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return fmt.Errorf("parse date_of_birth: %w", err)
		}
		emp.DateOfBirth = &dob
	}

	salary, err := decimal.NewFromString(req.Salary)
	if err != nil {
		return fmt.Errorf("parse salary: %w", err)
	}
	emp.Salary = salary

	return nil
}

func NewEmployeeRepository(db database.Querier) employee.Repository {
	return NewRepository(db, Mapping[employee.Employee, employee.EmployeeResponse, employee.CreateEmployeeRequest, employee.UpdateEmployeeRequest]{
		Entity:       "employee",
		BaseQuery:    employeeBaseQuery,
		IDPredicate:  "WHERE e.id = $1",
		DefaultOrder: "ORDER BY e.last_name ASC, e.first_name ASC",
		CountQuery:   "SELECT COUNT(*) FROM employees",
		ExistsQuery:  "SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)",

		Scan:        scanEmployee,
		ToTransport: employeeToResponse,
		NewRecord:   newEmployeeRecord,
		ApplyUpdate: applyEmployeeUpdate,

		InsertQuery: `
			INSERT INTO employees (
				id, first_name, last_name, email, phone_number, address,
				date_of_birth, joining_date, position, salary, department_id, is_active
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id`,
		InsertArgs: func(emp employee.Employee) []any {
			return []any{
				emp.ID, emp.FirstName, emp.LastName, emp.Email, emp.PhoneNumber,
				emp.Address, emp.DateOfBirth, emp.JoiningDate, emp.Position,
				emp.Salary, emp.DepartmentID, emp.IsActive,
			}
		},
		UpdateQuery: `
			UPDATE employees
			SET first_name = $1, last_name = $2, email = $3, phone_number = $4,
			    address = $5, date_of_birth = $6, joining_date = $7, position = $8,
			    salary = $9, department_id = $10, is_active = $11, updated_at = NOW()
			WHERE id = $12
			RETURNING id`,
		UpdateArgs: func(emp employee.Employee) []any {
			return []any{
				emp.FirstName, emp.LastName, emp.Email, emp.PhoneNumber,
				emp.Address, emp.DateOfBirth, emp.JoiningDate, emp.Position,
				emp.Salary, emp.DepartmentID, emp.IsActive, emp.ID,
			}
		},
		DeleteQuery: "DELETE FROM employees WHERE id = $1",

		ErrNotFound:   employee.ErrEmployeeNotFound,
		ErrDuplicate:  employee.ErrEmailExists,
		ErrReferenced: employee.ErrDepartmentNotFound,
	})
}
