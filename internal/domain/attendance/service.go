package attendance

import "context"

// Service defines business logic for the check-in/check-out workflow.
// Timestamps are always captured server-side.
type Service interface {
	// CheckIn opens a session for the employee. Fails with ErrAlreadyCheckedIn
	// while another session is open.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes the employee's open session and derives total hours.
	// Fails with ErrNotCheckedIn when no session is open.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// ListForEmployee returns the employee's records within an optional
	// inclusive date range.
	ListForEmployee(ctx context.Context, req ListRequest) ([]AttendanceResponse, error)
}
