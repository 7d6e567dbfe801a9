package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/petitmarche/shop-api/internal/api/metrics"
	"github.com/petitmarche/shop-api/internal/core/domain"
	"github.com/petitmarche/shop-api/internal/core/ports"
)

// ReferenceValidator resolves cross-entity references before mutating writes.
// Lookups go through an optional read-through cache; any cache failure falls
// back to the repository; a broken cache must never reject a valid write.
type ReferenceValidator struct {
	categories ports.CategoryRepository
	cache      ports.CategoryCache
	logger     zerolog.Logger
}

// NewReferenceValidator builds a ReferenceValidator. cache may be nil.
func NewReferenceValidator(categories ports.CategoryRepository, cache ports.CategoryCache, logger zerolog.Logger) *ReferenceValidator {
	return &ReferenceValidator{categories: categories, cache: cache, logger: logger}
}

// ValidateCategoryRef checks that categoryID resolves to an existing
// category and returns it. An unresolvable id yields ErrInvalidCategoryRef.
func (v *ReferenceValidator) ValidateCategoryRef(ctx context.Context, categoryID string) (*domain.Category, error) {
	if categoryID == "" {
		return nil, domain.ErrInvalidCategoryRef
	}

	if v.cache != nil {
		cached, err := v.cache.Get(ctx, categoryID)
		if err != nil {
			v.logger.Warn().Err(err).Str("category_id", categoryID).Msg("category cache lookup failed")
		} else if cached != nil {
			metrics.CategoryRefChecksTotal.WithLabelValues("cache_hit").Inc()
			return cached, nil
		}
	}

	category, err := v.categories.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			metrics.CategoryRefChecksTotal.WithLabelValues("invalid").Inc()
			return nil, domain.ErrInvalidCategoryRef
		}
		return nil, err
	}

	metrics.CategoryRefChecksTotal.WithLabelValues("cache_miss").Inc()
	if v.cache != nil {
		if err := v.cache.Set(ctx, category); err != nil {
			v.logger.Warn().Err(err).Str("category_id", categoryID).Msg("category cache store failed")
		}
	}
	return category, nil
}
