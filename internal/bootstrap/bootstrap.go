package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/workforcehq/workforce-backend-go/internal/domain/department"
	"github.com/workforcehq/workforce-backend-go/internal/domain/user"
)

// RunMigrations applies all pending schema migrations. A database that is
// already up to date is not an error.
func RunMigrations(migrationsDir, databaseURL string) error {
	m, err := migrate.New("file://"+migrationsDir, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}
	defer func() {
		sourceErr, dbErr := m.Close()
		if sourceErr != nil {
			slog.Warn("failed to close migration source", "error", sourceErr)
		}
		if dbErr != nil {
			slog.Warn("failed to close migration database", "error", dbErr)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// SeedOptions carries the initial admin credentials. Password arrives from
// the environment, never from source.
type SeedOptions struct {
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// Seed provisions the admin account and a starter set of departments. Safe to
// run on every boot: existing data short-circuits each step.
func Seed(ctx context.Context, userRepo user.Repository, departmentRepo department.Repository, opts SeedOptions) error {
	if opts.AdminUsername == "" || opts.AdminPassword == "" {
		return nil
	}

	existing, err := userRepo.GetByUsername(ctx, opts.AdminUsername)
	if err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		now := time.Now().UTC()
		_, err = userRepo.Create(ctx, user.User{
			ID:           uuid.Must(uuid.NewV7()).String(),
			Username:     opts.AdminUsername,
			Email:        opts.AdminEmail,
			PasswordHash: string(hash),
			Role:         user.RoleAdmin,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil && !errors.Is(err, user.ErrUsernameExists) && !errors.Is(err, user.ErrEmailExists) {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		slog.Info("seeded admin user", "username", opts.AdminUsername)
	}

	count, err := departmentRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count departments: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, name := range []string{"Engineering", "Human Resources", "Finance"} {
		if _, err := departmentRepo.Create(ctx, department.CreateDepartmentRequest{Name: name}); err != nil {
			if errors.Is(err, department.ErrDepartmentNameExists) {
				continue
			}
			return fmt.Errorf("failed to seed department %s: %w", name, err)
		}
	}
	slog.Info("seeded starter departments")

	return nil
}
