package database

import (
	"context"
	stderrors "errors"
	"time"

	"forecastapi.app/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ForecastCacheEntryModel represents one cached forecast keyed by coordinates
type ForecastCacheEntryModel struct {
	CacheKey  string    `gorm:"primaryKey;size:64"`
	Value     []byte    `gorm:"not null"`
	StoredAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
}

func (ForecastCacheEntryModel) TableName() string {
	return "forecast_cache_entries"
}

// ForecastCacheRepositoryAdapter implements the CacheProvider port using GORM
type ForecastCacheRepositoryAdapter struct {
	db  *gorm.DB
	now func() time.Time
}

// NewForecastCacheRepositoryAdapter creates a new SQL cache adapter
func NewForecastCacheRepositoryAdapter(db *gorm.DB) *ForecastCacheRepositoryAdapter {
	return &ForecastCacheRepositoryAdapter{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Get returns the stored value, or a NotFound error when absent or expired
func (r *ForecastCacheRepositoryAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	var model ForecastCacheEntryModel
	result := r.db.WithContext(ctx).Where("cache_key = ?", key).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("cache miss")
		}
		return nil, errors.NewCacheError("failed to read cache entry", result.Error)
	}

	now := r.now()
	if !now.Before(model.ExpiresAt) {
		if err := r.evictExpired(ctx, key, now); err != nil {
			return nil, err
		}
		return nil, errors.NewNotFoundError("cache entry expired")
	}

	return model.Value, nil
}

// Set upserts the entry so the most recent write wins
func (r *ForecastCacheRepositoryAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	now := r.now()
	model := &ForecastCacheEntryModel{
		CacheKey:  key,
		Value:     value,
		StoredAt:  now,
		ExpiresAt: now.Add(ttl),
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "stored_at", "expires_at"}),
	}).Create(model)
	if result.Error != nil {
		return errors.NewCacheError("failed to write cache entry", result.Error)
	}

	return nil
}

// evictExpired deletes key only while its row is still expired at now,
// so a concurrent Set that refreshed the row is kept.
func (r *ForecastCacheRepositoryAdapter) evictExpired(ctx context.Context, key string, now time.Time) error {
	result := r.db.WithContext(ctx).
		Where("cache_key = ? AND expires_at <= ?", key, now).
		Delete(&ForecastCacheEntryModel{})
	if result.Error != nil {
		return errors.NewCacheError("failed to evict expired cache entry", result.Error)
	}
	return nil
}

// PurgeExpired removes expired rows and reports how many were deleted
func (r *ForecastCacheRepositoryAdapter) PurgeExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", r.now()).Delete(&ForecastCacheEntryModel{})
	if result.Error != nil {
		return 0, errors.NewCacheError("failed to purge expired cache entries", result.Error)
	}
	return result.RowsAffected, nil
}

// Ping checks the database connection
func (r *ForecastCacheRepositoryAdapter) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return errors.NewCacheError("failed to get underlying database connection", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.NewCacheError("database ping failed", err)
	}
	return nil
}
