package attendance

import (
	"time"
)

// Attendance is one employee work session. A row with CheckOutTime nil is an
// open session; the store allows at most one open session per employee.
type Attendance struct {
	ID                string
	EmployeeID        string
	Date              time.Time
	CheckInTime       time.Time
	CheckOutTime      *time.Time
	TotalHoursMinutes *int
	Notes             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Projection
	EmployeeName string
}
