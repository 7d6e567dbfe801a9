package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/petitmarche/shop-api/internal/core/domain"
	"github.com/petitmarche/shop-api/internal/core/ports"
)

// CategoryService implements category CRUD.
type CategoryService struct {
	repo   ports.CategoryRepository
	cache  ports.CategoryCache
	logger zerolog.Logger
}

// NewCategoryService builds a CategoryService. cache may be nil.
func NewCategoryService(repo ports.CategoryRepository, cache ports.CategoryCache, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, cache: cache, logger: logger}
}

func (s *CategoryService) Create(ctx context.Context, input ports.CreateCategoryInput) (*domain.Category, error) {
	created, err := s.repo.Insert(ctx, &domain.Category{
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("category_id", created.ID).Str("name", created.Name).Msg("category created")
	return created, nil
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) Update(ctx context.Context, id string, patch ports.CategoryPatch) (*domain.Category, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return updated, nil
}

// Delete removes the category without checking prior existence: the original
// API reports success for unknown ids here, unlike product deletion, and
// existing clients depend on that.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.logger.Info().Str("category_id", id).Msg("category deleted")
	return nil
}

func (s *CategoryService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("category_id", id).Msg("category cache invalidation failed")
	}
}
