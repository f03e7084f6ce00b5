package attendance

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

const testEmployeeID = "01924f6e-74a2-7bbb-8d2c-111111111111"

type stubClock struct {
	now time.Time
}

func (c stubClock) Now() time.Time { return c.now }

// fakeAttendanceRepo keeps at most one open session, the way the partial
// unique index does in the real store: a concurrent insert against an open
// session loses with ErrAlreadyCheckedIn.
type fakeAttendanceRepo struct {
	mu       sync.Mutex
	open     *attendance.Attendance
	closed   *attendance.Attendance
	created  []attendance.Attendance
	listErr  error
	sessions []attendance.AttendanceResponse
}

func (f *fakeAttendanceRepo) ListAll(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (*attendance.AttendanceResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed != nil && f.closed.ID == id {
		resp := toResponse(*f.closed)
		return &resp, nil
	}
	for i := range f.created {
		if f.created[i].ID == id {
			resp := toResponse(f.created[i])
			return &resp, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Exists(ctx context.Context, id string) (bool, error) { return false, nil }

func (f *fakeAttendanceRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakeAttendanceRepo) GetOpenSession(ctx context.Context, employeeID string) (*attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.open == nil {
		return nil, nil
	}
	cp := *f.open
	return &cp, nil
}

func (f *fakeAttendanceRepo) CreateSession(ctx context.Context, att attendance.Attendance) (attendance.AttendanceResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.open != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}
	f.created = append(f.created, att)
	f.open = &att
	return toResponse(att), nil
}

func (f *fakeAttendanceRepo) CloseSession(ctx context.Context, att attendance.Attendance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.open == nil || f.open.ID != att.ID {
		return attendance.ErrNotCheckedIn
	}
	f.closed = &att
	f.open = nil
	return nil
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string, start, end *time.Time) ([]attendance.AttendanceResponse, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.sessions, nil
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	var checkOut *string
	if att.CheckOutTime != nil {
		s := att.CheckOutTime.Format("2006-01-02 15:04:05")
		checkOut = &s
	}
	var total *float64
	if att.TotalHoursMinutes != nil {
		h := float64(*att.TotalHoursMinutes) / 60.0
		total = &h
	}
	return attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		Date:         att.Date.Format("2006-01-02"),
		CheckInTime:  att.CheckInTime.Format("2006-01-02 15:04:05"),
		CheckOutTime: checkOut,
		TotalHours:   total,
		Notes:        att.Notes,
	}
}

type fakeEmployeeRepo struct {
	known map[string]bool // id -> active
}

func (f *fakeEmployeeRepo) ListAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (*employee.EmployeeResponse, error) {
	active, ok := f.known[id]
	if !ok {
		return nil, nil
	}
	return &employee.EmployeeResponse{ID: id, IsActive: active}, nil
}

func (f *fakeEmployeeRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := f.known[id]
	return ok, nil
}

func (f *fakeEmployeeRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakeEmployeeRepo) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{}, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{}, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

func newTestService(attRepo *fakeAttendanceRepo, now time.Time) attendance.Service {
	empRepo := &fakeEmployeeRepo{known: map[string]bool{testEmployeeID: true}}
	return NewAttendanceService(attRepo, empRepo, nil, stubClock{now: now})
}

func TestCheckIn_Success(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC)
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, now)

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: testEmployeeID})
	require.NoError(t, err)
	assert.Equal(t, testEmployeeID, resp.EmployeeID)
	assert.Equal(t, "2026-03-02", resp.Date)
	assert.Equal(t, "2026-03-02 09:15:00", resp.CheckInTime)
	assert.Nil(t, resp.CheckOutTime)
	require.Len(t, repo.created, 1)
	assert.NotEmpty(t, repo.created[0].ID)
}

func TestCheckIn_AlreadyOpen(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, now)

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: testEmployeeID})
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: testEmployeeID})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	assert.Len(t, repo.created, 1)
}

func TestCheckIn_Concurrent_SingleWinner(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, now)

	const attempts = 16
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: testEmployeeID})
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, attendance.ErrAlreadyCheckedIn):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)
	assert.Len(t, repo.created, 1)
}

func TestCheckIn_UnknownEmployee(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo := &fakeAttendanceRepo{}
	empRepo := &fakeEmployeeRepo{known: map[string]bool{}}
	svc := NewAttendanceService(repo, empRepo, nil, stubClock{now: now})

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: testEmployeeID})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, repo.created)
}

func TestCheckIn_InactiveEmployee(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo := &fakeAttendanceRepo{}
	empRepo := &fakeEmployeeRepo{known: map[string]bool{testEmployeeID: false}}
	svc := NewAttendanceService(repo, empRepo, nil, stubClock{now: now})

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: testEmployeeID})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
	assert.Empty(t, repo.created)
}

func TestCheckIn_InvalidEmployeeID(t *testing.T) {
	t.Parallel()

	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, time.Now())

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "not-a-uuid"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Empty(t, repo.created)
}

func TestCheckOut_ComputesDuration(t *testing.T) {
	t.Parallel()

	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(7*time.Hour + 45*time.Minute)

	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, checkIn)
	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: testEmployeeID})
	require.NoError(t, err)

	svc = newTestService(repo, checkOut)
	resp, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: testEmployeeID})
	require.NoError(t, err)

	require.NotNil(t, resp.CheckOutTime)
	assert.Equal(t, "2026-03-02 16:45:00", *resp.CheckOutTime)
	require.NotNil(t, resp.TotalHours)
	assert.InDelta(t, 7.75, *resp.TotalHours, 0.001)
}

func TestCheckOut_WithoutOpenSession(t *testing.T) {
	t.Parallel()

	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC))

	_, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: testEmployeeID})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOut_MergesNotes(t *testing.T) {
	t.Parallel()

	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo := &fakeAttendanceRepo{}

	inNote := "on site"
	svc := newTestService(repo, checkIn)
	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: testEmployeeID,
		Notes:      &inNote,
	})
	require.NoError(t, err)

	outNote := "left early"
	svc = newTestService(repo, checkIn.Add(4*time.Hour))
	resp, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		EmployeeID: testEmployeeID,
		Notes:      &outNote,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Notes)
	assert.Equal(t, "check-in: on site\ncheck-out: left early", *resp.Notes)
}

func TestListForEmployee_PassesRange(t *testing.T) {
	t.Parallel()

	repo := &fakeAttendanceRepo{
		sessions: []attendance.AttendanceResponse{{ID: "att-1", EmployeeID: testEmployeeID}},
	}
	svc := newTestService(repo, time.Now())

	start := "2026-03-01"
	end := "2026-03-31"
	list, err := svc.ListForEmployee(context.Background(), attendance.ListRequest{
		EmployeeID: testEmployeeID,
		StartDate:  &start,
		EndDate:    &end,
	})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListForEmployee_RejectsInvertedRange(t *testing.T) {
	t.Parallel()

	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, time.Now())

	start := "2026-03-31"
	end := "2026-03-01"
	_, err := svc.ListForEmployee(context.Background(), attendance.ListRequest{
		EmployeeID: testEmployeeID,
		StartDate:  &start,
		EndDate:    &end,
	})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
