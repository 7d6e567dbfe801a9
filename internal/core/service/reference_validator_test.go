package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/petitmarche/shop-api/internal/core/domain"
	"github.com/petitmarche/shop-api/internal/core/ports"
)

type stubCategoryRepo struct {
	categories map[string]*domain.Category
	findCalls  int
}

func newStubCategoryRepo(categories ...*domain.Category) *stubCategoryRepo {
	r := &stubCategoryRepo{categories: make(map[string]*domain.Category)}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return r
}

func (r *stubCategoryRepo) Insert(_ context.Context, c *domain.Category) (*domain.Category, error) {
	clone := *c
	if clone.ID == "" {
		clone.ID = "cat-" + c.Name
	}
	r.categories[clone.ID] = &clone
	return &clone, nil
}

func (r *stubCategoryRepo) FindAll(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	r.findCalls++
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, id string, patch ports.CategoryPatch) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.categories, id)
	return nil
}

type stubCategoryCache struct {
	entries     map[string]*domain.Category
	getErr      error
	invalidated []string
}

func newStubCategoryCache() *stubCategoryCache {
	return &stubCategoryCache{entries: make(map[string]*domain.Category)}
}

func (c *stubCategoryCache) Get(_ context.Context, id string) (*domain.Category, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[id], nil
}

func (c *stubCategoryCache) Set(_ context.Context, category *domain.Category) error {
	clone := *category
	c.entries[category.ID] = &clone
	return nil
}

func (c *stubCategoryCache) Invalidate(_ context.Context, id string) error {
	c.invalidated = append(c.invalidated, id)
	delete(c.entries, id)
	return nil
}

func TestReferenceValidator_ValidRef(t *testing.T) {
	repo := newStubCategoryRepo(&domain.Category{ID: "c1", Name: "Livres"})
	v := NewReferenceValidator(repo, nil, zerolog.Nop())

	category, err := v.ValidateCategoryRef(context.Background(), "c1")
	if err != nil {
		t.Fatalf("ValidateCategoryRef: %v", err)
	}
	if category.Name != "Livres" {
		t.Fatalf("unexpected category: %+v", category)
	}
}

func TestReferenceValidator_InvalidRef(t *testing.T) {
	v := NewReferenceValidator(newStubCategoryRepo(), nil, zerolog.Nop())

	if _, err := v.ValidateCategoryRef(context.Background(), "missing"); !errors.Is(err, domain.ErrInvalidCategoryRef) {
		t.Fatalf("expected ErrInvalidCategoryRef, got %v", err)
	}
	if _, err := v.ValidateCategoryRef(context.Background(), ""); !errors.Is(err, domain.ErrInvalidCategoryRef) {
		t.Fatalf("expected ErrInvalidCategoryRef for empty id, got %v", err)
	}
}

func TestReferenceValidator_CacheHitSkipsRepository(t *testing.T) {
	repo := newStubCategoryRepo(&domain.Category{ID: "c1", Name: "Livres"})
	cache := newStubCategoryCache()
	v := NewReferenceValidator(repo, cache, zerolog.Nop())

	// First lookup misses the cache, hits the repo and populates the cache.
	if _, err := v.ValidateCategoryRef(context.Background(), "c1"); err != nil {
		t.Fatalf("first lookup: %v", err)
	}
	if repo.findCalls != 1 {
		t.Fatalf("expected 1 repo call, got %d", repo.findCalls)
	}

	// Second lookup is served from the cache.
	if _, err := v.ValidateCategoryRef(context.Background(), "c1"); err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if repo.findCalls != 1 {
		t.Fatalf("expected cache hit, repo called %d times", repo.findCalls)
	}
}

func TestReferenceValidator_CacheErrorFallsBack(t *testing.T) {
	repo := newStubCategoryRepo(&domain.Category{ID: "c1", Name: "Livres"})
	cache := newStubCategoryCache()
	cache.getErr = errors.New("redis down")
	v := NewReferenceValidator(repo, cache, zerolog.Nop())

	category, err := v.ValidateCategoryRef(context.Background(), "c1")
	if err != nil {
		t.Fatalf("expected fallback to repo, got %v", err)
	}
	if category.ID != "c1" {
		t.Fatalf("unexpected category: %+v", category)
	}
}
