package attendance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
)

// Clock supplies the current time so check-in and check-out instants can be
// pinned in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

// TransactionManager runs fn inside a single database transaction. The
// repositories pick the transaction up from the context.
type TransactionManager interface {
	Within(ctx context.Context, fn func(ctx context.Context) error) error
}

type noopTxManager struct{}

func (noopTxManager) Within(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	tx             TransactionManager
	clock          Clock
}

func NewAttendanceService(attendanceRepo attendance.Repository, employeeRepo employee.Repository, tx TransactionManager, clock Clock) attendance.Service {
	if tx == nil {
		tx = noopTxManager{}
	}
	if clock == nil {
		clock = realClock{}
	}
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		tx:             tx,
		clock:          clock,
	}
}

// CheckIn opens a new attendance session. The open-session lookup and the
// insert run in one transaction so an employee can never hold two open
// sessions at once.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp == nil {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}
	if !emp.IsActive {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeInactive
	}

	now := s.clock.Now()
	var created attendance.AttendanceResponse
	err = s.tx.Within(ctx, func(txCtx context.Context) error {
		open, err := s.attendanceRepo.GetOpenSession(txCtx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get open session: %w", err)
		}
		if open != nil {
			return attendance.ErrAlreadyCheckedIn
		}

		record := attendance.Attendance{
			ID:          uuid.Must(uuid.NewV7()).String(),
			EmployeeID:  req.EmployeeID,
			Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
			CheckInTime: now,
			Notes:       phaseNotes("check-in", req.Notes),
		}

		created, err = s.attendanceRepo.CreateSession(txCtx, record)
		if err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return created, nil
}

// CheckOut closes the employee's open session, recording the worked duration
// in whole minutes.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.clock.Now()
	var closed attendance.AttendanceResponse
	err := s.tx.Within(ctx, func(txCtx context.Context) error {
		open, err := s.attendanceRepo.GetOpenSession(txCtx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get open session: %w", err)
		}
		if open == nil {
			return attendance.ErrNotCheckedIn
		}

		total := int(now.Sub(open.CheckInTime).Minutes())
		if total < 0 {
			total = 0
		}
		open.CheckOutTime = &now
		open.TotalHoursMinutes = &total
		open.Notes = mergeNotes(open.Notes, phaseNotes("check-out", req.Notes))

		if err := s.attendanceRepo.CloseSession(txCtx, *open); err != nil {
			return fmt.Errorf("failed to close session: %w", err)
		}

		result, err := s.attendanceRepo.GetByID(txCtx, open.ID)
		if err != nil {
			return fmt.Errorf("failed to get attendance: %w", err)
		}
		if result == nil {
			return attendance.ErrAttendanceNotFound
		}
		closed = *result
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return closed, nil
}

func (s *AttendanceServiceImpl) ListForEmployee(ctx context.Context, req attendance.ListRequest) ([]attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.employeeRepo.Exists(ctx, req.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return nil, employee.ErrEmployeeNotFound
	}

	var start, end *time.Time
	if req.StartDate != nil {
		t, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse start date: %w", err)
		}
		start = &t
	}
	if req.EndDate != nil {
		t, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse end date: %w", err)
		}
		end = &t
	}

	list, err := s.attendanceRepo.ListByEmployee(ctx, req.EmployeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	return list, nil
}

// phaseNotes labels free-text notes with the transition that recorded them.
func phaseNotes(phase string, notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	labeled := phase + ": " + trimmed
	return &labeled
}

func mergeNotes(existing, addition *string) *string {
	switch {
	case existing == nil:
		return addition
	case addition == nil:
		return existing
	}
	merged := *existing + "\n" + *addition
	return &merged
}
