package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/workforcehq/workforce-backend-go/internal/domain/auth"
	"github.com/workforcehq/workforce-backend-go/internal/domain/user"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if u, ok := f.users[username]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.users[u.Username] = u
	return u, nil
}

func newLoginFixture(t *testing.T, password string) auth.Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]user.User{
		"admin": {
			ID:           "01924f6e-74a2-7bbb-8d2c-333333333333",
			Username:     "admin",
			Email:        "admin@example.com",
			PasswordHash: string(hash),
			Role:         user.RoleAdmin,
		},
	}}

	jwtService := jwt.NewJWTService("test-secret-key", "1h")
	return NewAuthService(repo, jwtService)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc := newLoginFixture(t, "correct horse battery")

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "admin",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.AccessTokenExpiresAt, int64(0))
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	svc := newLoginFixture(t, "correct horse battery")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "admin",
		Password: "wrong password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	t.Parallel()

	svc := newLoginFixture(t, "correct horse battery")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "nobody",
		Password: "correct horse battery",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_EmptyPassword(t *testing.T) {
	t.Parallel()

	svc := newLoginFixture(t, "correct horse battery")

	_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "admin"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}
