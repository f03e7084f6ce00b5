package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

const attendanceBaseQuery = `
	SELECT a.id, a.employee_id, a.date, a.check_in_time, a.check_out_time,
	       a.total_hours_minutes, a.notes, a.created_at, a.updated_at,
	       e.first_name || ' ' || e.last_name AS employee_name
	FROM attendances a
	JOIN employees e ON e.id = a.employee_id`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckInTime, &att.CheckOutTime,
		&att.TotalHoursMinutes, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName,
	)
	return att, err
}

func attendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	var checkOut *string
	if att.CheckOutTime != nil {
		formatted := att.CheckOutTime.Format("2006-01-02 15:04:05")
		checkOut = &formatted
	}

	var totalHours *float64
	if att.TotalHoursMinutes != nil {
		hours := float64(*att.TotalHoursMinutes) / 60.0
		totalHours = &hours
	}

	return attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: att.EmployeeName,
		Date:         att.Date.Format("2006-01-02"),
		CheckInTime:  att.CheckInTime.Format("2006-01-02 15:04:05"),
		CheckOutTime: checkOut,
		TotalHours:   totalHours,
		Notes:        att.Notes,
		CreatedAt:    att.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    att.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

type attendanceRepository struct {
	*Repository[attendance.Attendance, attendance.AttendanceResponse, attendance.Attendance, attendance.Attendance]
	db database.Querier
}

func NewAttendanceRepository(db database.Querier) attendance.Repository {
	generic := NewRepository(db, Mapping[attendance.Attendance, attendance.AttendanceResponse, attendance.Attendance, attendance.Attendance]{
		Entity:       "attendance",
		BaseQuery:    attendanceBaseQuery,
		IDPredicate:  "WHERE a.id = $1",
		DefaultOrder: "ORDER BY a.date ASC, a.check_in_time ASC",
		CountQuery:   "SELECT COUNT(*) FROM attendances",
		ExistsQuery:  "SELECT EXISTS (SELECT 1 FROM attendances WHERE id = $1)",

		Scan:        scanAttendance,
		ToTransport: attendanceToResponse,

		// The engine builds the session record itself; the creation payload
		// is already the stored shape.
		NewRecord: func(att attendance.Attendance) (attendance.Attendance, error) {
			return att, nil
		},
		InsertQuery: `
			INSERT INTO attendances (id, employee_id, date, check_in_time, notes)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
		InsertArgs: func(att attendance.Attendance) []any {
			return []any{att.ID, att.EmployeeID, att.Date, att.CheckInTime, att.Notes}
		},
		DeleteQuery: "DELETE FROM attendances WHERE id = $1",

		ErrNotFound:  attendance.ErrAttendanceNotFound,
		ErrDuplicate: attendance.ErrAlreadyCheckedIn,
		// The insert's foreign key is the employee row; losing it mid-flight
		// means the employee is gone, not the session.
		ErrReferenced: employee.ErrEmployeeNotFound,
	})

	return &attendanceRepository{Repository: generic, db: db}
}

// CreateSession implements attendance.Repository.
func (r *attendanceRepository) CreateSession(ctx context.Context, att attendance.Attendance) (attendance.AttendanceResponse, error) {
	return r.Create(ctx, att)
}

// GetOpenSession implements attendance.Repository. Inside a transaction the
// row is locked so a concurrent check-out cannot slip between the read and
// the write.
func (r *attendanceRepository) GetOpenSession(ctx context.Context, employeeID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceBaseQuery + `
	WHERE a.employee_id = $1
	  AND a.check_out_time IS NULL
	ORDER BY a.check_in_time DESC
	LIMIT 1
	FOR UPDATE OF a`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open session: %w", err)
	}

	return &att, nil
}

// CloseSession implements attendance.Repository.
func (r *attendanceRepository) CloseSession(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out_time = $1, total_hours_minutes = $2, notes = $3, updated_at = NOW()
		WHERE id = $4
		  AND check_out_time IS NULL
		RETURNING id`

	var closedID string
	err := q.QueryRow(ctx, query, att.CheckOutTime, att.TotalHoursMinutes, att.Notes, att.ID).Scan(&closedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrNotCheckedIn
		}
		return fmt.Errorf("close session: %w", err)
	}

	return nil
}

// ListByEmployee implements attendance.Repository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, start, end *time.Time) ([]attendance.AttendanceResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceBaseQuery + " WHERE a.employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if start != nil {
		query += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *start)
		argIdx++
	}
	if end != nil {
		query += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *end)
		argIdx++
	}

	query += " ORDER BY a.date ASC, a.check_in_time ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attendance for employee: %w", err)
	}
	defer rows.Close()

	out := make([]attendance.AttendanceResponse, 0)
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		out = append(out, attendanceToResponse(att))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list attendance for employee: %w", err)
	}

	return out, nil
}
