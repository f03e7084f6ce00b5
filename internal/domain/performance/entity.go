package performance

import (
	"time"
)

type PerformanceMetric struct {
	ID           string
	EmployeeID   string
	Year         int
	Quarter      int
	Score        int
	Comments     *string
	Goals        *string
	Achievements *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Projection
	EmployeeName string
}
