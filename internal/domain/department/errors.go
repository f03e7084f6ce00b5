package department

import "errors"

var (
	ErrDepartmentNotFound     = errors.New("department not found")
	ErrDepartmentNameExists   = errors.New("department name already exists")
	ErrDepartmentHasEmployees = errors.New("department still has employees assigned")
)
