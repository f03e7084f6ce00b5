package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/domain/report"
)

// Generator renders a dataset into one output format. New formats plug in by
// registering another Generator; the pipeline itself never changes.
type Generator interface {
	Render(ds report.Dataset) ([]byte, error)
	ContentType() string
	Extension() string
}

type ReportServiceImpl struct {
	reportRepo report.Repository
	generators map[string]Generator
	now        func() time.Time
}

func NewReportService(reportRepo report.Repository) report.Service {
	return &ReportServiceImpl{
		reportRepo: reportRepo,
		generators: map[string]Generator{
			report.FormatCSV:  csvGenerator{},
			report.FormatPDF:  pdfGenerator{},
			report.FormatJSON: jsonGenerator{},
		},
		now: time.Now,
	}
}

func (s *ReportServiceImpl) Formats() []string {
	formats := make([]string, 0, len(s.generators))
	for name := range s.generators {
		formats = append(formats, name)
	}
	sort.Strings(formats)
	return formats
}

// Generate resolves the output format before any dataset query runs, so a
// request for an unsupported format costs no database work.
func (s *ReportServiceImpl) Generate(ctx context.Context, req report.GenerateRequest) (report.Document, error) {
	if err := req.Validate(); err != nil {
		return report.Document{}, err
	}

	gen, ok := s.generators[req.Format]
	if !ok {
		return report.Document{}, report.ErrUnsupportedFormat
	}

	ds, err := s.buildDataset(ctx, req)
	if err != nil {
		return report.Document{}, err
	}

	data, err := gen.Render(ds)
	if err != nil {
		return report.Document{}, fmt.Errorf("failed to render %s report: %w", req.Format, err)
	}

	return report.Document{
		Filename:    fmt.Sprintf("%s_%s.%s", ds.Name, ds.GeneratedAt.Format("2006-01-02"), gen.Extension()),
		ContentType: gen.ContentType(),
		Data:        data,
	}, nil
}

func (s *ReportServiceImpl) buildDataset(ctx context.Context, req report.GenerateRequest) (report.Dataset, error) {
	switch req.Dataset {
	case report.DatasetEmployeeDirectory:
		return s.buildEmployeeDirectory(ctx)
	case report.DatasetAttendance:
		return s.buildAttendanceSheet(ctx, req.StartDate, req.EndDate)
	case report.DatasetDepartmentHeadcount:
		return s.buildDepartmentHeadcount(ctx)
	default:
		return report.Dataset{}, report.ErrUnknownDataset
	}
}

func (s *ReportServiceImpl) buildEmployeeDirectory(ctx context.Context) (report.Dataset, error) {
	rows, err := s.reportRepo.GetEmployeeDirectory(ctx)
	if err != nil {
		return report.Dataset{}, fmt.Errorf("failed to get employee directory: %w", err)
	}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		status := "inactive"
		if row.IsActive {
			status = "active"
		}
		records = append(records, []string{
			row.EmployeeID,
			row.FullName,
			row.Email,
			row.Position,
			row.DepartmentName,
			row.JoiningDate.Format("2006-01-02"),
			status,
		})
	}

	return report.Dataset{
		Name:        report.DatasetEmployeeDirectory,
		Title:       "Employee Directory",
		Columns:     []string{"employee_id", "full_name", "email", "position", "department", "joining_date", "status"},
		Rows:        records,
		GeneratedAt: s.now().UTC(),
	}, nil
}

func (s *ReportServiceImpl) buildAttendanceSheet(ctx context.Context, startDate, endDate *string) (report.Dataset, error) {
	var start, end *time.Time
	if startDate != nil {
		t, err := time.Parse("2006-01-02", *startDate)
		if err != nil {
			return report.Dataset{}, fmt.Errorf("failed to parse start date: %w", err)
		}
		start = &t
	}
	if endDate != nil {
		t, err := time.Parse("2006-01-02", *endDate)
		if err != nil {
			return report.Dataset{}, fmt.Errorf("failed to parse end date: %w", err)
		}
		end = &t
	}
	if start != nil && end != nil && end.Before(*start) {
		return report.Dataset{}, report.ErrInvalidDateRange
	}

	rows, err := s.reportRepo.GetAttendanceSheet(ctx, start, end)
	if err != nil {
		return report.Dataset{}, fmt.Errorf("failed to get attendance sheet: %w", err)
	}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		checkOut := ""
		if row.CheckOutTime != nil {
			checkOut = row.CheckOutTime.Format("2006-01-02 15:04:05")
		}
		total := ""
		if row.TotalHoursMinutes != nil {
			total = fmt.Sprintf("%.2f", float64(*row.TotalHoursMinutes)/60)
		}
		records = append(records, []string{
			row.EmployeeName,
			row.Date.Format("2006-01-02"),
			row.CheckInTime.Format("2006-01-02 15:04:05"),
			checkOut,
			total,
		})
	}

	title := "Attendance Sheet"
	if startDate != nil || endDate != nil {
		from, to := "start", "present"
		if startDate != nil {
			from = *startDate
		}
		if endDate != nil {
			to = *endDate
		}
		title = fmt.Sprintf("Attendance Sheet (%s to %s)", from, to)
	}

	return report.Dataset{
		Name:        report.DatasetAttendance,
		Title:       title,
		Columns:     []string{"employee_name", "date", "check_in_time", "check_out_time", "total_hours"},
		Rows:        records,
		GeneratedAt: s.now().UTC(),
	}, nil
}

func (s *ReportServiceImpl) buildDepartmentHeadcount(ctx context.Context) (report.Dataset, error) {
	rows, err := s.reportRepo.GetDepartmentHeadcount(ctx)
	if err != nil {
		return report.Dataset{}, fmt.Errorf("failed to get department headcount: %w", err)
	}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		manager := ""
		if row.ManagerName != nil {
			manager = strings.TrimSpace(*row.ManagerName)
		}
		records = append(records, []string{
			row.DepartmentName,
			manager,
			fmt.Sprintf("%d", row.EmployeeCount),
			fmt.Sprintf("%d", row.ActiveCount),
		})
	}

	return report.Dataset{
		Name:        report.DatasetDepartmentHeadcount,
		Title:       "Department Headcount",
		Columns:     []string{"department", "manager", "employee_count", "active_count"},
		Rows:        records,
		GeneratedAt: s.now().UTC(),
	}, nil
}
