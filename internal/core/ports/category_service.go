package ports

import (
	"context"

	"github.com/petitmarche/shop-api/internal/core/domain"
)

// CreateCategoryInput carries the data for a new category.
type CreateCategoryInput struct {
	Name        string
	Description string
}

// CategoryService defines use-case operations for categories.
type CategoryService interface {
	Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Update(ctx context.Context, id string, patch CategoryPatch) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
