package external

import (
	"context"
	"fmt"
	"time"

	"forecastapi.app/internal/adapters/database"
	"forecastapi.app/internal/config"
	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
)

const purgeTimeout = 10 * time.Second

// CacheBackend is a constructed cache provider plus the hook that releases it
type CacheBackend struct {
	Provider ports.CacheProvider
	Close    func() error
}

type CacheProviderFactory struct {
	logger ports.Logger
}

func NewCacheProviderFactory(logger ports.Logger) *CacheProviderFactory {
	return &CacheProviderFactory{logger: logger}
}

func (f *CacheProviderFactory) CreateCacheProvider(cfg *config.CacheConfig) (*CacheBackend, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.CacheTypeMemory:
		provider, err := NewMemoryCacheProvider(cfg.MemorySize)
		if err != nil {
			return nil, err
		}
		return &CacheBackend{Provider: provider, Close: func() error { return nil }}, nil
	case config.CacheTypeRedis:
		provider, err := NewRedisCacheProviderAdapter(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &CacheBackend{Provider: provider, Close: provider.Close}, nil
	case config.CacheTypeDatabase:
		return f.createDatabaseProvider(cfg.Database)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}
}

func (f *CacheProviderFactory) createDatabaseProvider(cfg config.DatabaseConfig) (*CacheBackend, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	closeDB := func() error { return database.Close(db) }

	if err := database.RunMigrations(db); err != nil {
		_ = closeDB()
		return nil, err
	}

	provider := database.NewForecastCacheRepositoryAdapter(db)

	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()
	if purged, err := provider.PurgeExpired(ctx); err != nil {
		f.logger.Warn("Failed to purge expired forecast cache entries", ports.F("error", err))
	} else if purged > 0 {
		f.logger.Info("Purged expired forecast cache entries", ports.F("count", purged))
	}

	return &CacheBackend{Provider: provider, Close: closeDB}, nil
}
