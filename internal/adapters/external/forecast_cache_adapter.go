package external

import (
	"context"
	"encoding/json"
	"time"

	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
)

// ForecastCacheAdapter bridges a byte-level CacheProvider to the ForecastCache port
type ForecastCacheAdapter struct {
	cacheProvider ports.CacheProvider
}

// NewForecastCacheAdapter creates a forecast cache over a generic cache provider
func NewForecastCacheAdapter(cacheProvider ports.CacheProvider) *ForecastCacheAdapter {
	return &ForecastCacheAdapter{
		cacheProvider: cacheProvider,
	}
}

// Get retrieves a cached forecast; misses surface as the provider's NotFound error
func (a *ForecastCacheAdapter) Get(ctx context.Context, key string) (*ports.ForecastData, error) {
	data, err := a.cacheProvider.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var forecast ports.ForecastData
	if err := json.Unmarshal(data, &forecast); err != nil {
		return nil, errors.NewCacheError("failed to deserialize cached forecast", err)
	}

	return &forecast, nil
}

// Set stores a forecast for ttl
func (a *ForecastCacheAdapter) Set(ctx context.Context, key string, forecast *ports.ForecastData, ttl time.Duration) error {
	if forecast == nil {
		return errors.NewValidationError("forecast cannot be nil")
	}

	data, err := json.Marshal(forecast)
	if err != nil {
		return errors.NewCacheError("failed to serialize forecast", err)
	}

	return a.cacheProvider.Set(ctx, key, data, ttl)
}
