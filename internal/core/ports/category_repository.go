package ports

import (
	"context"

	"github.com/petitmarche/shop-api/internal/core/domain"
)

// CategoryPatch carries the fields of a partial category update.
// Nil pointers mean "leave unchanged".
type CategoryPatch struct {
	Name        *string
	Description *string
}

// CategoryRepository defines persistence for categories.
type CategoryRepository interface {
	Insert(ctx context.Context, category *domain.Category) (*domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	// Update applies the patch and returns the updated document.
	Update(ctx context.Context, id string, patch CategoryPatch) (*domain.Category, error)
	// Delete removes the category. It does not report whether a document
	// existed; callers treat the delete as unconditional.
	Delete(ctx context.Context, id string) error
}
