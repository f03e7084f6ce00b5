package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn   = errors.New("employee already has an open attendance session")
	ErrNotCheckedIn       = errors.New("employee has no open attendance session")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
