package report

import (
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

// Dataset names and output formats accepted by the pipeline.
const (
	DatasetEmployeeDirectory   = "employee-directory"
	DatasetAttendance          = "attendance"
	DatasetDepartmentHeadcount = "department-headcount"

	FormatCSV  = "csv"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

type GenerateRequest struct {
	Dataset   string
	Format    string
	StartDate *string
	EndDate   *string
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.StartDate != nil && r.EndDate != nil && *r.EndDate < *r.StartDate {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Dataset is the common tabular result set every generator renders. The
// pipeline builds it once; generators only decide the byte representation.
type Dataset struct {
	Name        string     `json:"name"`
	Title       string     `json:"title"`
	Columns     []string   `json:"columns"`
	Rows        [][]string `json:"rows"`
	GeneratedAt time.Time  `json:"generated_at"`
}

// Document is a rendered report ready to stream to the caller.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

type EmployeeDirectoryRow struct {
	EmployeeID     string
	FullName       string
	Email          string
	Position       string
	DepartmentName string
	JoiningDate    time.Time
	IsActive       bool
}

type AttendanceSheetRow struct {
	EmployeeName      string
	Date              time.Time
	CheckInTime       time.Time
	CheckOutTime      *time.Time
	TotalHoursMinutes *int
}

type DepartmentHeadcountRow struct {
	DepartmentName string
	ManagerName    *string
	EmployeeCount  int64
	ActiveCount    int64
}
