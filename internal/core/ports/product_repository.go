package ports

import (
	"context"

	"github.com/petitmarche/shop-api/internal/core/domain"
)

// ProductPatch carries the fields of a partial product update.
// Nil pointers mean "leave unchanged". A non-nil Images pointer replaces the
// whole stored image list, never merges with it.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	CategoryID  *string
	Images      *[]string
}

// ProductRepository defines persistence for products.
type ProductRepository interface {
	Insert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// Update applies the patch and returns the updated document, or
	// domain.ErrProductNotFound when id does not resolve.
	Update(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	// Delete removes the product, or returns domain.ErrProductNotFound when
	// the store reports no match.
	Delete(ctx context.Context, id string) error
}
