package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// ErrUnsupportedOperation is returned when a repository was configured
// without the mapping blocks an operation needs.
var ErrUnsupportedOperation = errors.New("operation not configured for this repository")

// Mapping bundles the per-entity building blocks the generic repository
// consumes: the base query scope (joins included), the record scan, the
// record-to-transport projection, and the payload-to-record conversions.
// Everything else (list, get, exists, count, create, update, delete) is
// shared.
type Mapping[E any, T any, C any, U any] struct {
	// Entity is used in error messages only.
	Entity string

	// BaseQuery is the entity's base scope: a SELECT carrying every join the
	// transport projection needs and no WHERE clause. Filtering composes onto
	// it, so projection stays a single store-side query.
	BaseQuery string
	// IDPredicate is appended to BaseQuery for single-row reads, e.g.
	// "WHERE e.id = $1".
	IDPredicate string
	// DefaultOrder is appended to list reads, e.g. "ORDER BY e.created_at".
	DefaultOrder string
	CountQuery   string
	ExistsQuery  string

	// Scan reads one BaseQuery row into the stored shape. pgx.Rows satisfies
	// pgx.Row, so the same function serves single- and multi-row reads.
	Scan func(row pgx.Row) (E, error)
	// ToTransport projects the stored shape into the transport shape.
	ToTransport func(E) T

	// NewRecord converts a creation payload into a new stored record,
	// assigning its identity.
	NewRecord func(C) (E, error)
	// ApplyUpdate copies mutable fields from an update payload onto an
	// existing record, preserving identity and creation metadata.
	ApplyUpdate func(*E, U) error

	// InsertQuery must end with RETURNING id; InsertArgs supplies its
	// placeholders from the new record.
	InsertQuery string
	InsertArgs  func(E) []any
	// UpdateQuery must end with RETURNING id; UpdateArgs supplies its
	// placeholders from the updated record.
	UpdateQuery string
	UpdateArgs  func(E) []any
	DeleteQuery string

	// Store-constraint translations. Nil entries leave the pg error as-is.
	ErrNotFound   error // absent row on update/delete
	ErrDuplicate  error // unique violation (23505)
	ErrReferenced error // foreign key violation (23503)
}

// Repository is the shared data-access implementation, parameterized over the
// stored shape E, the transport shape T, the creation payload C and the
// update payload U.
type Repository[E any, T any, C any, U any] struct {
	db database.Querier
	m  Mapping[E, T, C, U]
}

func NewRepository[E any, T any, C any, U any](db database.Querier, m Mapping[E, T, C, U]) *Repository[E, T, C, U] {
	return &Repository[E, T, C, U]{db: db, m: m}
}

// ListAll applies the base scope and converts every matching record into its
// transport shape.
func (r *Repository[E, T, C, U]) ListAll(ctx context.Context) ([]T, error) {
	q := GetQuerier(ctx, r.db)

	query := r.m.BaseQuery
	if r.m.DefaultOrder != "" {
		query += " " + r.m.DefaultOrder
	}

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.m.Entity, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		rec, err := r.m.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.m.Entity, err)
		}
		out = append(out, r.m.ToTransport(rec))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.m.Entity, err)
	}

	return out, nil
}

// GetByID returns the transport shape of one record, or (nil, nil) when the
// id has no match.
func (r *Repository[E, T, C, U]) GetByID(ctx context.Context, id string) (*T, error) {
	rec, err := r.getRecord(ctx, id)
	if err != nil || rec == nil {
		return nil, err
	}
	t := r.m.ToTransport(*rec)
	return &t, nil
}

// Exists checks identity presence without materializing the transport shape.
func (r *Repository[E, T, C, U]) Exists(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, r.m.ExistsQuery, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check %s existence: %w", r.m.Entity, err)
	}
	return exists, nil
}

// Count returns the total rows matching the base scope.
func (r *Repository[E, T, C, U]) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, r.m.CountQuery).Scan(&total); err != nil {
		return 0, fmt.Errorf("count %s: %w", r.m.Entity, err)
	}
	return total, nil
}

// Create converts the payload into a new record, inserts it and returns the
// fresh transport shape.
func (r *Repository[E, T, C, U]) Create(ctx context.Context, payload C) (T, error) {
	var zero T
	if r.m.NewRecord == nil || r.m.InsertQuery == "" {
		return zero, ErrUnsupportedOperation
	}

	rec, err := r.m.NewRecord(payload)
	if err != nil {
		return zero, err
	}

	q := GetQuerier(ctx, r.db)
	var id string
	if err := q.QueryRow(ctx, r.m.InsertQuery, r.m.InsertArgs(rec)...).Scan(&id); err != nil {
		return zero, r.translate(fmt.Errorf("insert %s: %w", r.m.Entity, err))
	}

	created, err := r.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if created == nil {
		return zero, fmt.Errorf("inserted %s %s not readable through base scope", r.m.Entity, id)
	}
	return *created, nil
}

// Update copies mutable payload fields onto the stored record and persists
// it, preserving identity and creation metadata.
func (r *Repository[E, T, C, U]) Update(ctx context.Context, id string, payload U) (T, error) {
	var zero T
	if r.m.ApplyUpdate == nil || r.m.UpdateQuery == "" {
		return zero, ErrUnsupportedOperation
	}

	rec, err := r.getRecord(ctx, id)
	if err != nil {
		return zero, err
	}
	if rec == nil {
		return zero, r.m.ErrNotFound
	}

	if err := r.m.ApplyUpdate(rec, payload); err != nil {
		return zero, err
	}

	q := GetQuerier(ctx, r.db)
	var updatedID string
	if err := q.QueryRow(ctx, r.m.UpdateQuery, r.m.UpdateArgs(*rec)...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, r.m.ErrNotFound
		}
		return zero, r.translate(fmt.Errorf("update %s: %w", r.m.Entity, err))
	}

	updated, err := r.GetByID(ctx, updatedID)
	if err != nil {
		return zero, err
	}
	if updated == nil {
		return zero, r.m.ErrNotFound
	}
	return *updated, nil
}

// Delete removes the record. Foreign-key restrictions surface as the
// mapping's referenced error.
func (r *Repository[E, T, C, U]) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, r.m.DeleteQuery, id)
	if err != nil {
		return r.translate(fmt.Errorf("delete %s: %w", r.m.Entity, err))
	}
	if tag.RowsAffected() == 0 {
		return r.m.ErrNotFound
	}
	return nil
}

func (r *Repository[E, T, C, U]) getRecord(ctx context.Context, id string) (*E, error) {
	q := GetQuerier(ctx, r.db)

	row := q.QueryRow(ctx, r.m.BaseQuery+" "+r.m.IDPredicate, id)
	rec, err := r.m.Scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", r.m.Entity, err)
	}
	return &rec, nil
}

// translate maps store constraint violations onto the entity's domain
// sentinels so callers can tell conflicts from absence.
func (r *Repository[E, T, C, U]) translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			if r.m.ErrDuplicate != nil {
				return r.m.ErrDuplicate
			}
		case foreignKeyViolationCode:
			if r.m.ErrReferenced != nil {
				return r.m.ErrReferenced
			}
		}
	}
	return err
}
