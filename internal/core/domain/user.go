package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingCredentials = errors.New("username and password are required")
var ErrInvalidRole = errors.New("invalid role")

// User models a registered account. PasswordHash never crosses the API
// boundary (json:"-").
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidRole reports whether role is one of the known roles. Roles are flat:
// admin is an exact match, there is no hierarchy.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
