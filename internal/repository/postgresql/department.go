package postgresql

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workforcehq/workforce-backend-go/internal/domain/department"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

// The employee count is a scalar subquery so the base scope composes with a
// WHERE predicate without a GROUP BY.
const departmentBaseQuery = `
	SELECT d.id, d.name, d.description, d.manager_name, d.created_at, d.updated_at,
	       (SELECT COUNT(*) FROM employees e WHERE e.department_id = d.id) AS employee_count
	FROM departments d`

func scanDepartment(row pgx.Row) (department.Department, error) {
	var dep department.Department
	err := row.Scan(
		&dep.ID, &dep.Name, &dep.Description, &dep.ManagerName,
		&dep.CreatedAt, &dep.UpdatedAt, &dep.EmployeeCount,
	)
	return dep, err
}

func departmentToResponse(dep department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:            dep.ID,
		Name:          dep.Name,
		Description:   dep.Description,
		ManagerName:   dep.ManagerName,
		EmployeeCount: dep.EmployeeCount,
		CreatedAt:     dep.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     dep.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func newDepartmentRecord(req department.CreateDepartmentRequest) (department.Department, error) {
	return department.Department{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Name:        req.Name,
		Description: req.Description,
		ManagerName: req.ManagerName,
	}, nil
}

func applyDepartmentUpdate(dep *department.Department, req department.UpdateDepartmentRequest) error {
	dep.Name = req.Name
	dep.Description = req.Description
	dep.ManagerName = req.ManagerName
	return nil
}

func NewDepartmentRepository(db database.Querier) department.Repository {
	return NewRepository(db, Mapping[department.Department, department.DepartmentResponse, department.CreateDepartmentRequest, department.UpdateDepartmentRequest]{
		Entity:       "department",
		BaseQuery:    departmentBaseQuery,
		IDPredicate:  "WHERE d.id = $1",
		DefaultOrder: "ORDER BY d.name ASC",
		CountQuery:   "SELECT COUNT(*) FROM departments",
		ExistsQuery:  "SELECT EXISTS (SELECT 1 FROM departments WHERE id = $1)",

		Scan:        scanDepartment,
		ToTransport: departmentToResponse,
		NewRecord:   newDepartmentRecord,
		ApplyUpdate: applyDepartmentUpdate,

		InsertQuery: `
			INSERT INTO departments (id, name, description, manager_name)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
		InsertArgs: func(dep department.Department) []any {
			return []any{dep.ID, dep.Name, dep.Description, dep.ManagerName}
		},
		UpdateQuery: `
			UPDATE departments
			SET name = $1, description = $2, manager_name = $3, updated_at = NOW()
			WHERE id = $4
			RETURNING id`,
		UpdateArgs: func(dep department.Department) []any {
			return []any{dep.Name, dep.Description, dep.ManagerName, dep.ID}
		},
		DeleteQuery: "DELETE FROM departments WHERE id = $1",

		ErrNotFound:   department.ErrDepartmentNotFound,
		ErrDuplicate:  department.ErrDepartmentNameExists,
		ErrReferenced: department.ErrDepartmentHasEmployees,
	})
}
