package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records. The read side is the
// generic repository contract; the write side is session-shaped because the
// check-in/check-out transition owns the row lifecycle.
type Repository interface {
	ListAll(ctx context.Context) ([]AttendanceResponse, error)
	GetByID(ctx context.Context, id string) (*AttendanceResponse, error)
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)

	// GetOpenSession returns the employee's open session, or nil when none
	// exists.
	GetOpenSession(ctx context.Context, employeeID string) (*Attendance, error)

	// CreateSession inserts a new open session. The partial unique index on
	// open sessions turns a concurrent duplicate into ErrAlreadyCheckedIn.
	CreateSession(ctx context.Context, att Attendance) (AttendanceResponse, error)

	// CloseSession records check-out time, derived total minutes and merged
	// notes on an open session.
	CloseSession(ctx context.Context, att Attendance) error

	// ListByEmployee returns the employee's records, optionally bounded by an
	// inclusive date range, ordered by date then check-in time ascending.
	ListByEmployee(ctx context.Context, employeeID string, start, end *time.Time) ([]AttendanceResponse, error)
}
