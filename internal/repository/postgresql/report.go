package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/domain/report"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db database.Querier
}

func NewReportRepository(db database.Querier) report.Repository {
	return &reportRepository{db: db}
}

// GetEmployeeDirectory implements report.Repository.
func (r *reportRepository) GetEmployeeDirectory(ctx context.Context) ([]report.EmployeeDirectoryRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.first_name || ' ' || e.last_name, e.email, e.position,
		       d.name, e.joining_date, e.is_active
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		ORDER BY d.name ASC, e.last_name ASC, e.first_name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query employee directory: %w", err)
	}
	defer rows.Close()

	out := make([]report.EmployeeDirectoryRow, 0)
	for rows.Next() {
		var row report.EmployeeDirectoryRow
		if err := rows.Scan(
			&row.EmployeeID, &row.FullName, &row.Email, &row.Position,
			&row.DepartmentName, &row.JoiningDate, &row.IsActive,
		); err != nil {
			return nil, fmt.Errorf("scan employee directory row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query employee directory: %w", err)
	}

	return out, nil
}

// GetAttendanceSheet implements report.Repository.
func (r *reportRepository) GetAttendanceSheet(ctx context.Context, start, end *time.Time) ([]report.AttendanceSheetRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.first_name || ' ' || e.last_name, a.date, a.check_in_time,
		       a.check_out_time, a.total_hours_minutes
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id`

	where := ""
	args := []interface{}{}
	argIdx := 1

	if start != nil {
		where += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *start)
		argIdx++
	}
	if end != nil {
		where += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *end)
		argIdx++
	}
	if where != "" {
		query += " WHERE" + where[4:]
	}

	query += " ORDER BY a.date ASC, a.check_in_time ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attendance sheet: %w", err)
	}
	defer rows.Close()

	out := make([]report.AttendanceSheetRow, 0)
	for rows.Next() {
		var row report.AttendanceSheetRow
		if err := rows.Scan(
			&row.EmployeeName, &row.Date, &row.CheckInTime,
			&row.CheckOutTime, &row.TotalHoursMinutes,
		); err != nil {
			return nil, fmt.Errorf("scan attendance sheet row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query attendance sheet: %w", err)
	}

	return out, nil
}

// GetDepartmentHeadcount implements report.Repository.
func (r *reportRepository) GetDepartmentHeadcount(ctx context.Context) ([]report.DepartmentHeadcountRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.name, d.manager_name,
		       COUNT(e.id) AS employee_count,
		       COUNT(e.id) FILTER (WHERE e.is_active) AS active_count
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id
		GROUP BY d.id, d.name, d.manager_name
		ORDER BY d.name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query department headcount: %w", err)
	}
	defer rows.Close()

	out := make([]report.DepartmentHeadcountRow, 0)
	for rows.Next() {
		var row report.DepartmentHeadcountRow
		if err := rows.Scan(
			&row.DepartmentName, &row.ManagerName,
			&row.EmployeeCount, &row.ActiveCount,
		); err != nil {
			return nil, fmt.Errorf("scan department headcount row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query department headcount: %w", err)
	}

	return out, nil
}
