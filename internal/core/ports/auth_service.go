package ports

import (
	"context"

	"github.com/petitmarche/shop-api/internal/core/domain"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string
	User      *domain.User
	ExpiresIn int // token lifetime in seconds
}

// AuthService implements registration, login and profile lookup.
type AuthService interface {
	// Register creates an account. Role defaults to "user" when empty.
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	// Login verifies credentials and issues a token. Unknown username and
	// wrong password both map to domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Profile(ctx context.Context, id string) (*domain.User, error)
}
