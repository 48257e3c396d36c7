package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/shopzone/storefront-gateway/internal/core/domain"
)

const (
	categoriesKey = "cache:categories"
	categoriesTTL = 5 * time.Minute
)

// CategoryCache caches the upstream category list, which is immutable from
// the client's perspective. A decode failure is treated as a miss.
type CategoryCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewCategoryCache creates a CategoryCache wrapping the given Redis client.
func NewCategoryCache(client *redis.Client, log zerolog.Logger) *CategoryCache {
	return &CategoryCache{client: client, log: log}
}

// Get returns the cached category list, or ok=false on a miss.
func (c *CategoryCache) Get(ctx context.Context) ([]domain.Category, bool) {
	raw, err := c.client.Get(ctx, categoriesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("category cache read failed")
		return nil, false
	}

	var categories []domain.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		c.log.Warn().Err(err).Msg("category cache entry is not decodable")
		return nil, false
	}
	return categories, true
}

// Set stores the category list with a short TTL.
func (c *CategoryCache) Set(ctx context.Context, categories []domain.Category) error {
	raw, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("category cache encode: %w", err)
	}
	if err := c.client.Set(ctx, categoriesKey, raw, categoriesTTL).Err(); err != nil {
		return fmt.Errorf("category cache write: %w", err)
	}
	return nil
}
