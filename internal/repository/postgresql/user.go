package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workforcehq/workforce-backend-go/internal/domain/user"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

type userRepository struct {
	db database.Querier
}

func NewUserRepository(db database.Querier) user.Repository {
	return &userRepository{db: db}
}

// GetByUsername implements user.Repository. Returns (nil, nil) when the
// username is unknown.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE username = $1`

	var u user.User
	err := q.QueryRow(ctx, query, username).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}

	return &u, nil
}

// Create implements user.Repository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, username, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	err := q.QueryRow(ctx, query, u.ID, u.Username, u.Email, u.PasswordHash, string(u.Role)).
		Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			// Username and email both carry unique constraints; the
			// constraint name tells which one fired.
			if strings.Contains(pgErr.ConstraintName, "email") {
				return user.User{}, user.ErrEmailExists
			}
			return user.User{}, user.ErrUsernameExists
		}
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	return u, nil
}
