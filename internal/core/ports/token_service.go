package ports

import (
	"time"

	"github.com/petitmarche/shop-api/internal/core/domain"
)

// TokenService issues and verifies signed, time-limited identity tokens.
// It owns no persistent state: both operations are pure functions of the
// shared signing secret.
type TokenService interface {
	// Issue signs a token carrying the user's id, username and role.
	Issue(user *domain.User) (string, *domain.Claims, error)
	// Verify parses and validates a token. Returns domain.ErrTokenExpired
	// for expired tokens and domain.ErrTokenInvalid for everything else
	// that fails verification.
	Verify(token string) (*domain.Claims, error)
	// TTL reports the lifetime applied to issued tokens.
	TTL() time.Duration
}
