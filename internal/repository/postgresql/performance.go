package postgresql

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workforcehq/workforce-backend-go/internal/domain/performance"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

const performanceBaseQuery = `
	SELECT p.id, p.employee_id, p.year, p.quarter, p.score,
	       p.comments, p.goals, p.achievements, p.created_at, p.updated_at,
	       e.first_name || ' ' || e.last_name AS employee_name
	FROM performance_metrics p
	JOIN employees e ON e.id = p.employee_id`

func scanMetric(row pgx.Row) (performance.PerformanceMetric, error) {
	var m performance.PerformanceMetric
	err := row.Scan(
		&m.ID, &m.EmployeeID, &m.Year, &m.Quarter, &m.Score,
		&m.Comments, &m.Goals, &m.Achievements, &m.CreatedAt, &m.UpdatedAt,
		&m.EmployeeName,
	)
	return m, err
}

func metricToResponse(m performance.PerformanceMetric) performance.MetricResponse {
	return performance.MetricResponse{
		ID:           m.ID,
		EmployeeID:   m.EmployeeID,
		EmployeeName: m.EmployeeName,
		Year:         m.Year,
		Quarter:      m.Quarter,
		Score:        m.Score,
		Comments:     m.Comments,
		Goals:        m.Goals,
		Achievements: m.Achievements,
		CreatedAt:    m.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    m.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func newMetricRecord(req performance.CreateMetricRequest) (performance.PerformanceMetric, error) {
	return performance.PerformanceMetric{
		ID:           uuid.Must(uuid.NewV7()).String(),
		EmployeeID:   req.EmployeeID,
		Year:         req.Year,
		Quarter:      req.Quarter,
		Score:        req.Score,
		Comments:     req.Comments,
		Goals:        req.Goals,
		Achievements: req.Achievements,
	}, nil
}

func applyMetricUpdate(m *performance.PerformanceMetric, req performance.UpdateMetricRequest) error {
	m.Year = req.Year
	m.Quarter = req.Quarter
	m.Score = req.Score
	m.Comments = req.Comments
	m.Goals = req.Goals
	m.Achievements = req.Achievements
	return nil
}

func NewPerformanceRepository(db database.Querier) performance.Repository {
	return NewRepository(db, Mapping[performance.PerformanceMetric, performance.MetricResponse, performance.CreateMetricRequest, performance.UpdateMetricRequest]{
		Entity:       "performance metric",
		BaseQuery:    performanceBaseQuery,
		IDPredicate:  "WHERE p.id = $1",
		DefaultOrder: "ORDER BY p.year DESC, p.quarter DESC",
		CountQuery:   "SELECT COUNT(*) FROM performance_metrics",
		ExistsQuery:  "SELECT EXISTS (SELECT 1 FROM performance_metrics WHERE id = $1)",

		Scan:        scanMetric,
		ToTransport: metricToResponse,
		NewRecord:   newMetricRecord,
		ApplyUpdate: applyMetricUpdate,

		InsertQuery: `
			INSERT INTO performance_metrics (
				id, employee_id, year, quarter, score, comments, goals, achievements
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
		InsertArgs: func(m performance.PerformanceMetric) []any {
			return []any{
				m.ID, m.EmployeeID, m.Year, m.Quarter, m.Score,
				m.Comments, m.Goals, m.Achievements,
			}
		},
		UpdateQuery: `
			UPDATE performance_metrics
			SET year = $1, quarter = $2, score = $3, comments = $4,
			    goals = $5, achievements = $6, updated_at = NOW()
			WHERE id = $7
			RETURNING id`,
		UpdateArgs: func(m performance.PerformanceMetric) []any {
			return []any{
				m.Year, m.Quarter, m.Score, m.Comments,
				m.Goals, m.Achievements, m.ID,
			}
		},
		DeleteQuery: "DELETE FROM performance_metrics WHERE id = $1",

		ErrNotFound:   performance.ErrMetricNotFound,
		ErrReferenced: performance.ErrEmployeeNotFound,
	})
}
