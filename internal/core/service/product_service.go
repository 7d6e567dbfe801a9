package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/petitmarche/shop-api/internal/api/metrics"
	"github.com/petitmarche/shop-api/internal/core/domain"
	"github.com/petitmarche/shop-api/internal/core/ports"
)

// ProductService implements product CRUD with referential validation and
// image storage.
type ProductService struct {
	repo      ports.ProductRepository
	validator ports.ReferenceValidator
	blobs     ports.BlobStore
	logger    zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, validator ports.ReferenceValidator, blobs ports.BlobStore, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, validator: validator, blobs: blobs, logger: logger}
}

// Create validates the category reference, stores the uploaded images and
// inserts the product. The reference check runs first so the common failure
// path uploads nothing; a blob failure mid-sequence leaves earlier files
// behind (no rollback, same as the original API).
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if _, err := s.validator.ValidateCategoryRef(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	images, err := s.saveImages(ctx, input.Images)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Images:      images,
		CategoryID:  input.CategoryID,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	metrics.ProductsCreatedTotal.Inc()
	s.logger.Info().Str("product_id", created.ID).Str("category_id", created.CategoryID).
		Int("images", len(images)).Msg("product created")
	return created, nil
}

// List returns all products with their category references resolved.
func (s *ProductService) List(ctx context.Context) ([]ports.ProductView, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ports.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ports.ProductView{
			Product:  p,
			Category: s.resolveCategory(ctx, p.CategoryID),
		})
	}
	return views, nil
}

// Get returns one product with its category reference resolved.
func (s *ProductService) Get(ctx context.Context, id string) (*ports.ProductView, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.ProductView{
		Product:  *product,
		Category: s.resolveCategory(ctx, product.CategoryID),
	}, nil
}

// Update applies only the supplied fields. A changed category is re-validated
// before the write; newly supplied images fully replace the stored list.
func (s *ProductService) Update(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	if input.CategoryID != nil {
		if _, err := s.validator.ValidateCategoryRef(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	patch := ports.ProductPatch{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
	}

	if input.ReplaceImages {
		images, err := s.saveImages(ctx, input.Images)
		if err != nil {
			return nil, err
		}
		patch.Images = &images
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// saveImages stores every upload in order and returns the stored names.
func (s *ProductService) saveImages(ctx context.Context, uploads []ports.ImageUpload) ([]string, error) {
	names := make([]string, 0, len(uploads))
	for _, img := range uploads {
		name, err := s.blobs.Save(ctx, img.Filename, img.Content)
		if err != nil {
			s.logger.Error().Err(err).Str("filename", img.Filename).Msg("image upload failed")
			return nil, err
		}
		metrics.ImagesUploadedTotal.Inc()
		names = append(names, name)
	}
	return names, nil
}

// resolveCategory denormalizes the category reference for read responses.
// A dangling reference is logged and rendered as null rather than failing
// the whole read.
func (s *ProductService) resolveCategory(ctx context.Context, categoryID string) *domain.Category {
	category, err := s.validator.ValidateCategoryRef(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCategoryRef) {
			s.logger.Warn().Err(err).Str("category_id", categoryID).Msg("category resolution failed")
		}
		return nil
	}
	return category
}
