package postgresql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforcehq/workforce-backend-go/internal/domain/department"
)

var departmentColumns = []string{
	"id", "name", "description", "manager_name", "created_at", "updated_at", "employee_count",
}

func newDepartmentMock(t *testing.T) (pgxmock.PgxPoolIface, department.Repository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewDepartmentRepository(mock)
}

func TestDepartmentRepository_ListAll(t *testing.T) {
	t.Parallel()
	mock, repo := newDepartmentMock(t)

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM departments d")).
		WillReturnRows(pgxmock.NewRows(departmentColumns).
			AddRow("dep-1", "Engineering", nil, nil, now, now, int64(4)).
			AddRow("dep-2", "Finance", nil, nil, now, now, int64(0)))

	list, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Engineering", list[0].Name)
	assert.Equal(t, int64(4), list[0].EmployeeCount)
	assert.Equal(t, "2026-03-01 09:00:00", list[0].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepository_GetByID_Absent(t *testing.T) {
	t.Parallel()
	mock, repo := newDepartmentMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE d.id = $1")).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(departmentColumns))

	result, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepository_Create_DuplicateName(t *testing.T) {
	t.Parallel()
	mock, repo := newDepartmentMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO departments")).
		WithArgs(pgxmock.AnyArg(), "Engineering", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	_, err := repo.Create(context.Background(), department.CreateDepartmentRequest{Name: "Engineering"})
	assert.ErrorIs(t, err, department.ErrDepartmentNameExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepository_Delete_Referenced(t *testing.T) {
	t.Parallel()
	mock, repo := newDepartmentMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM departments WHERE id = $1")).
		WithArgs("dep-1").
		WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode})

	err := repo.Delete(context.Background(), "dep-1")
	assert.ErrorIs(t, err, department.ErrDepartmentHasEmployees)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepository_Delete_Absent(t *testing.T) {
	t.Parallel()
	mock, repo := newDepartmentMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM departments WHERE id = $1")).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepository_Exists(t *testing.T) {
	t.Parallel()
	mock, repo := newDepartmentMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("dep-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), "dep-1")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
