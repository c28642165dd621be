package external

import (
	"context"
	"time"

	"forecastapi.app/pkg/errors"
	lru "github.com/hashicorp/golang-lru/v2"
)

// MemoryCacheProvider is a size-bounded in-process cache with per-entry expiry
type MemoryCacheProvider struct {
	lru *lru.Cache[string, *memoryCacheItem]
	now func() time.Time
}

type memoryCacheItem struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryCacheProvider creates a memory cache holding at most size entries
func NewMemoryCacheProvider(size int) (*MemoryCacheProvider, error) {
	cache, err := lru.New[string, *memoryCacheItem](size)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to create memory cache", err)
	}

	return &MemoryCacheProvider{
		lru: cache,
		now: time.Now,
	}, nil
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	item, exists := c.lru.Get(key)
	if !exists {
		return nil, errors.NewNotFoundError("cache miss")
	}
	// expired items stay until overwritten or evicted by size
	if !c.now().Before(item.expiresAt) {
		return nil, errors.NewNotFoundError("cache entry expired")
	}

	return item.data, nil
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	c.lru.Add(key, &memoryCacheItem{
		data:      value,
		expiresAt: c.now().Add(ttl),
	})
	return nil
}
