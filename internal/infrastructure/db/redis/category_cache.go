package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/petitmarche/shop-api/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// CategoryCache is a read-through cache of category documents used by the
// reference validator. Key format: category:<id>
type CategoryCache struct {
	client *redis.Client
}

// NewCategoryCache creates a CategoryCache wrapping the given Redis client.
func NewCategoryCache(client *redis.Client) *CategoryCache {
	return &CategoryCache{client: client}
}

// Get returns the cached category, or (nil, nil) on a miss.
func (c *CategoryCache) Get(ctx context.Context, id string) (*domain.Category, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("category cache get: %w", err)
	}

	var category domain.Category
	if err := json.Unmarshal(raw, &category); err != nil {
		// A corrupt entry behaves like a miss; it gets overwritten on Set.
		return nil, nil
	}
	return &category, nil
}

// Set stores the category with the cache TTL.
func (c *CategoryCache) Set(ctx context.Context, category *domain.Category) error {
	raw, err := json.Marshal(category)
	if err != nil {
		return fmt.Errorf("category cache marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(category.ID), raw, cacheTTL).Err()
}

// Invalidate drops the cached entry after a category mutation.
func (c *CategoryCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *CategoryCache) key(id string) string {
	return "category:" + id
}
