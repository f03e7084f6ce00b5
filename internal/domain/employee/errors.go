package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrDepartmentNotFound = errors.New("referenced department does not exist")
	ErrEmployeeInactive   = errors.New("employee is not active")
)
