package report

import (
	"context"
	"time"
)

// Repository defines the read models behind the report datasets.
type Repository interface {
	GetEmployeeDirectory(ctx context.Context) ([]EmployeeDirectoryRow, error)
	GetAttendanceSheet(ctx context.Context, start, end *time.Time) ([]AttendanceSheetRow, error)
	GetDepartmentHeadcount(ctx context.Context) ([]DepartmentHeadcountRow, error)
}
