package response

import (
	"errors"
	"net/http"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/auth"
	"github.com/workforcehq/workforce-backend-go/internal/domain/department"
	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/domain/performance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/report"
	"github.com/workforcehq/workforce-backend-go/internal/domain/user"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, department.ErrDepartmentHasEmployees):
		Conflict(w, "Department still has employees assigned")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, "Employee is not active")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Employee already has an open attendance session")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "Employee has no open attendance session")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Performance domain errors
	case errors.Is(err, performance.ErrMetricNotFound):
		NotFound(w, "Performance metric not found")
	case errors.Is(err, performance.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Report domain errors
	case errors.Is(err, report.ErrUnsupportedFormat):
		BadRequest(w, "Unsupported report format", nil)
	case errors.Is(err, report.ErrUnknownDataset):
		BadRequest(w, "Unknown report dataset", nil)
	case errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
