package ports

import (
	"context"
	"io"

	"github.com/petitmarche/shop-api/internal/core/domain"
)

// ImageUpload is one uploaded file handed from the transport layer to the
// product service. Content is consumed exactly once.
type ImageUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// CreateProductInput carries all data needed to create a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	CategoryID  string
	Images      []ImageUpload
}

// UpdateProductInput carries a partial product update. Nil pointers mean
// "leave unchanged"; a non-nil Images slice fully replaces the image list.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	CategoryID  *string
	Images      []ImageUpload
	// ReplaceImages is true when the request supplied image files, even an
	// empty set would keep the previous list (multipart cannot express an
	// explicit empty replacement).
	ReplaceImages bool
}

// ProductView is a product with its category reference resolved.
type ProductView struct {
	Product  domain.Product
	Category *domain.Category
}

// ProductService defines use-case operations for products.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	List(ctx context.Context) ([]ProductView, error)
	Get(ctx context.Context, id string) (*ProductView, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
