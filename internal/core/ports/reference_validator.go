package ports

import (
	"context"

	"github.com/petitmarche/shop-api/internal/core/domain"
)

// ReferenceValidator enforces referential integrity for cross-entity
// references. The document store is schemaless, so every mutating write that
// supplies a reference must go through the validator first.
type ReferenceValidator interface {
	// ValidateCategoryRef resolves the category id, returning
	// domain.ErrInvalidCategoryRef when it does not exist.
	ValidateCategoryRef(ctx context.Context, categoryID string) (*domain.Category, error)
}

// CategoryCache is an optional read-through cache consulted by the validator.
// A miss is (nil, nil); cache errors degrade to a repository lookup.
type CategoryCache interface {
	Get(ctx context.Context, id string) (*domain.Category, error)
	Set(ctx context.Context, category *domain.Category) error
	// Invalidate drops a cached entry after a category mutation.
	Invalidate(ctx context.Context, id string) error
}
