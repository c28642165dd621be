package external

import (
	"context"
	"sync"
	"testing"
	"time"

	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance verification
var _ ports.CacheProvider = (*InstrumentedCacheProvider)(nil)

type countingCacheMetrics struct {
	mu         sync.Mutex
	hits       int64
	misses     int64
	operations map[string]int
}

func newCountingCacheMetrics() *countingCacheMetrics {
	return &countingCacheMetrics{operations: make(map[string]int)}
}

func (m *countingCacheMetrics) GetStats() ports.CacheStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return ports.CacheStats{Hits: m.hits, Misses: m.misses, TotalOps: m.hits + m.misses}
}

func (m *countingCacheMetrics) RecordHit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hits++
}

func (m *countingCacheMetrics) RecordMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.misses++
}

func (m *countingCacheMetrics) RecordOperation(operation string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.operations[operation]++
}

type failingCacheProvider struct{}

func (failingCacheProvider) Get(context.Context, string) ([]byte, error) {
	return nil, errors.NewCacheError("backend down", nil)
}

func (failingCacheProvider) Set(context.Context, string, []byte, time.Duration) error {
	return errors.NewCacheError("backend down", nil)
}

func TestInstrumentedCacheProvider_RecordsHitsAndMisses(t *testing.T) {
	memory, err := NewMemoryCacheProvider(8)
	require.NoError(t, err)
	metrics := newCountingCacheMetrics()
	logger := &testLogger{}
	cache := NewInstrumentedCacheProvider(memory, metrics, logger)
	ctx := context.Background()

	_, err = cache.Get(ctx, "k")
	assert.True(t, errors.IsNotFoundError(err))

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))

	value, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, map[string]int{"get": 2, "set": 1}, metrics.operations)

	var messages []string
	for _, entry := range logger.snapshot() {
		messages = append(messages, entry.message)
	}
	assert.Equal(t, []string{"cache miss", "cache set", "cache hit"}, messages)
}

func TestInstrumentedCacheProvider_BackendErrorsAreNotMisses(t *testing.T) {
	metrics := newCountingCacheMetrics()
	cache := NewInstrumentedCacheProvider(failingCacheProvider{}, metrics, &testLogger{})
	ctx := context.Background()

	_, err := cache.Get(ctx, "k")
	assert.True(t, errors.IsCacheError(err))
	assert.True(t, errors.IsCacheError(cache.Set(ctx, "k", []byte("v"), time.Minute)))

	stats := metrics.GetStats()
	assert.Equal(t, int64(0), stats.TotalOps)
	assert.Equal(t, 1, metrics.operations["get"])
	assert.Equal(t, 1, metrics.operations["set"])
}
