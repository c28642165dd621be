package external

import (
	"context"
	"time"

	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
)

// InstrumentedCacheProvider records hit, miss and latency metrics around a CacheProvider
type InstrumentedCacheProvider struct {
	cache   ports.CacheProvider
	metrics ports.CacheMetrics
	logger  ports.Logger
}

// NewInstrumentedCacheProvider wraps cache with metrics reporting
func NewInstrumentedCacheProvider(cache ports.CacheProvider, metrics ports.CacheMetrics, logger ports.Logger) *InstrumentedCacheProvider {
	return &InstrumentedCacheProvider{
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

func (c *InstrumentedCacheProvider) measure(operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	c.metrics.RecordOperation(operation, time.Since(start))
	return err
}

func (c *InstrumentedCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := c.measure("get", func() error {
		var getErr error
		data, getErr = c.cache.Get(ctx, key)
		return getErr
	})

	switch {
	case err == nil:
		c.metrics.RecordHit()
		c.logger.Debug("cache hit", ports.F("key", key))
	case errors.IsNotFoundError(err):
		c.metrics.RecordMiss()
		c.logger.Debug("cache miss", ports.F("key", key))
	}

	return data, err
}

func (c *InstrumentedCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.measure("set", func() error {
		return c.cache.Set(ctx, key, value, ttl)
	})
	if err == nil {
		c.logger.Debug("cache set", ports.F("key", key), ports.F("ttl", ttl.String()))
	}
	return err
}
