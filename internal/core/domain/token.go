package domain

import (
	"errors"
	"time"
)

var ErrMissingSecret = errors.New("token signing secret is not configured")
var ErrTokenInvalid = errors.New("token is not valid")
var ErrTokenExpired = errors.New("token has expired")

// Claims is the verified identity payload carried by a signed token.
// It is derived from a User at login and never persisted.
type Claims struct {
	UserID    string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"-"`
	ExpiresAt time.Time `json:"-"`
}
