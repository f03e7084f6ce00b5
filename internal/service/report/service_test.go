package report

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforcehq/workforce-backend-go/internal/domain/report"
)

type fakeReportRepo struct {
	calls      int
	directory  []report.EmployeeDirectoryRow
	sheet      []report.AttendanceSheetRow
	headcount  []report.DepartmentHeadcountRow
	sheetStart *time.Time
	sheetEnd   *time.Time
}

func (f *fakeReportRepo) GetEmployeeDirectory(ctx context.Context) ([]report.EmployeeDirectoryRow, error) {
	f.calls++
	return f.directory, nil
}

func (f *fakeReportRepo) GetAttendanceSheet(ctx context.Context, start, end *time.Time) ([]report.AttendanceSheetRow, error) {
	f.calls++
	f.sheetStart = start
	f.sheetEnd = end
	return f.sheet, nil
}

func (f *fakeReportRepo) GetDepartmentHeadcount(ctx context.Context) ([]report.DepartmentHeadcountRow, error) {
	f.calls++
	return f.headcount, nil
}

func newTestReportService(repo *fakeReportRepo) *ReportServiceImpl {
	svc := NewReportService(repo).(*ReportServiceImpl)
	svc.now = func() time.Time { return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestGenerate_UnsupportedFormat_NoRepoCall(t *testing.T) {
	t.Parallel()

	repo := &fakeReportRepo{}
	svc := newTestReportService(repo)

	_, err := svc.Generate(context.Background(), report.GenerateRequest{
		Dataset: report.DatasetEmployeeDirectory,
		Format:  "xlsx",
	})
	assert.ErrorIs(t, err, report.ErrUnsupportedFormat)
	assert.Zero(t, repo.calls)
}

func TestGenerate_UnknownDataset(t *testing.T) {
	t.Parallel()

	repo := &fakeReportRepo{}
	svc := newTestReportService(repo)

	_, err := svc.Generate(context.Background(), report.GenerateRequest{
		Dataset: "payroll",
		Format:  report.FormatCSV,
	})
	assert.ErrorIs(t, err, report.ErrUnknownDataset)
	assert.Zero(t, repo.calls)
}

func TestGenerate_CSV(t *testing.T) {
	t.Parallel()

	repo := &fakeReportRepo{
		directory: []report.EmployeeDirectoryRow{
			{
				EmployeeID:     "emp-1",
				FullName:       "Ada Lovelace",
				Email:          "ada@example.com",
				Position:       "Engineer",
				DepartmentName: "Engineering",
				JoiningDate:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				IsActive:       true,
			},
		},
	}
	svc := newTestReportService(repo)

	doc, err := svc.Generate(context.Background(), report.GenerateRequest{
		Dataset: report.DatasetEmployeeDirectory,
		Format:  report.FormatCSV,
	})
	require.NoError(t, err)

	assert.Equal(t, "text/csv", doc.ContentType)
	assert.Equal(t, "employee-directory_2026-03-02.csv", doc.Filename)

	lines := strings.Split(strings.TrimSpace(string(doc.Data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "employee_id,full_name,email,position,department,joining_date,status", lines[0])
	assert.Equal(t, "emp-1,Ada Lovelace,ada@example.com,Engineer,Engineering,2024-01-15,active", lines[1])
}

func TestGenerate_JSON(t *testing.T) {
	t.Parallel()

	repo := &fakeReportRepo{
		headcount: []report.DepartmentHeadcountRow{
			{DepartmentName: "Engineering", EmployeeCount: 12, ActiveCount: 11},
		},
	}
	svc := newTestReportService(repo)

	doc, err := svc.Generate(context.Background(), report.GenerateRequest{
		Dataset: report.DatasetDepartmentHeadcount,
		Format:  report.FormatJSON,
	})
	require.NoError(t, err)
	assert.Equal(t, "application/json", doc.ContentType)

	var ds report.Dataset
	require.NoError(t, json.Unmarshal(doc.Data, &ds))
	assert.Equal(t, report.DatasetDepartmentHeadcount, ds.Name)
	assert.Equal(t, []string{"department", "manager", "employee_count", "active_count"}, ds.Columns)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, []string{"Engineering", "", "12", "11"}, ds.Rows[0])
}

func TestGenerate_PDF(t *testing.T) {
	t.Parallel()

	repo := &fakeReportRepo{
		directory: []report.EmployeeDirectoryRow{
			{FullName: "Ada (Lovelace)", JoiningDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		},
	}
	svc := newTestReportService(repo)

	doc, err := svc.Generate(context.Background(), report.GenerateRequest{
		Dataset: report.DatasetEmployeeDirectory,
		Format:  report.FormatPDF,
	})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.True(t, bytes.HasPrefix(doc.Data, []byte("%PDF-1.4")))
	assert.True(t, bytes.HasSuffix(doc.Data, []byte("%%EOF")))
	// Parentheses in values must be escaped inside text streams.
	assert.Contains(t, string(doc.Data), `Ada \(Lovelace\)`)
}

func TestGenerate_AttendanceSheet_PassesRange(t *testing.T) {
	t.Parallel()

	total := 465
	checkOut := time.Date(2026, 3, 1, 16, 45, 0, 0, time.UTC)
	repo := &fakeReportRepo{
		sheet: []report.AttendanceSheetRow{
			{
				EmployeeName:      "Ada Lovelace",
				Date:              time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				CheckInTime:       time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
				CheckOutTime:      &checkOut,
				TotalHoursMinutes: &total,
			},
		},
	}
	svc := newTestReportService(repo)

	start := "2026-03-01"
	end := "2026-03-31"
	doc, err := svc.Generate(context.Background(), report.GenerateRequest{
		Dataset:   report.DatasetAttendance,
		Format:    report.FormatCSV,
		StartDate: &start,
		EndDate:   &end,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.sheetStart)
	require.NotNil(t, repo.sheetEnd)
	assert.Equal(t, "2026-03-01", repo.sheetStart.Format("2006-01-02"))
	assert.Equal(t, "2026-03-31", repo.sheetEnd.Format("2006-01-02"))
	assert.Contains(t, string(doc.Data), "7.75")
}

func TestGenerate_AttendanceSheet_InvertedRange(t *testing.T) {
	t.Parallel()

	repo := &fakeReportRepo{}
	svc := newTestReportService(repo)

	start := "2026-03-31"
	end := "2026-03-01"
	_, err := svc.Generate(context.Background(), report.GenerateRequest{
		Dataset:   report.DatasetAttendance,
		Format:    report.FormatCSV,
		StartDate: &start,
		EndDate:   &end,
	})
	assert.ErrorIs(t, err, report.ErrInvalidDateRange)
	assert.Zero(t, repo.calls)
}

func TestFormats_Sorted(t *testing.T) {
	t.Parallel()

	svc := newTestReportService(&fakeReportRepo{})
	assert.Equal(t, []string{"csv", "json", "pdf"}, svc.Formats())
}
