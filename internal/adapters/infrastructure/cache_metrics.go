package infrastructure

import (
	"sync"
	"time"

	"forecastapi.app/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusCacheMetrics implements the CacheMetrics port.
// Counters are exported through the registerer and mirrored locally for GetStats.
type PrometheusCacheMetrics struct {
	cacheType string
	hits      int64
	misses    int64
	updated   time.Time
	mu        sync.RWMutex

	hitsTotal     prometheus.Counter
	missesTotal   prometheus.Counter
	requestsTotal prometheus.Counter
	hitRatio      prometheus.Gauge
	latency       *prometheus.HistogramVec
}

// NewPrometheusCacheMetrics registers the cache collectors on reg, labelled with cacheType
func NewPrometheusCacheMetrics(reg prometheus.Registerer, cacheType string) *PrometheusCacheMetrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"cache_type": cacheType}

	return &PrometheusCacheMetrics{
		cacheType: cacheType,
		hitsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "forecast_cache_hits_total",
			Help:        "The total number of forecast cache hits",
			ConstLabels: labels,
		}),
		missesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "forecast_cache_misses_total",
			Help:        "The total number of forecast cache misses",
			ConstLabels: labels,
		}),
		requestsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "forecast_cache_requests_total",
			Help:        "The total number of forecast cache lookups",
			ConstLabels: labels,
		}),
		hitRatio: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "forecast_cache_hit_ratio",
			Help:        "Cache hit ratio (hits/total lookups)",
			ConstLabels: labels,
		}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "forecast_cache_duration_seconds",
			Help:        "Cache operation duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}, []string{"operation"}),
	}
}

func (m *PrometheusCacheMetrics) RecordHit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hits++
	m.hitsTotal.Inc()
	m.recordLookup()
}

func (m *PrometheusCacheMetrics) RecordMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.misses++
	m.missesTotal.Inc()
	m.recordLookup()
}

func (m *PrometheusCacheMetrics) RecordOperation(operation string, duration time.Duration) {
	m.latency.WithLabelValues(operation).Observe(duration.Seconds())
}

// recordLookup must be called while holding the mutex
func (m *PrometheusCacheMetrics) recordLookup() {
	m.requestsTotal.Inc()
	m.updated = time.Now()
	m.hitRatio.Set(float64(m.hits) / float64(m.hits+m.misses))
}

func (m *PrometheusCacheMetrics) GetStats() ports.CacheStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := m.hits + m.misses
	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(m.hits) / float64(total)
	}

	return ports.CacheStats{
		Hits:        m.hits,
		Misses:      m.misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		LastUpdated: m.updated,
	}
}

// CacheType returns the backend label the metrics are reported under
func (m *PrometheusCacheMetrics) CacheType() string {
	return m.cacheType
}
