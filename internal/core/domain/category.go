package domain

import (
	"errors"
	"time"
)

var ErrCategoryNotFound = errors.New("category not found")

// ErrInvalidCategoryRef is returned when a product write references a
// category id that does not resolve to an existing category.
var ErrInvalidCategoryRef = errors.New("invalid category reference")

// Category groups products. Writes are admin only, reads are public.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
