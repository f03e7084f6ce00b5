package user

import "context"

// Repository covers what the login flow and the seeder need; users are an
// external collaborator to the core, not full CRUD.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, u User) (User, error)
}
