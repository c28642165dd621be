package infrastructure

import (
	"context"

	"forecastapi.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// Pinger is implemented by cache backends that hold a remote connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// CacheHealthChecker reports cache backend connectivity and hit statistics
type CacheHealthChecker struct {
	cacheType string
	pinger    Pinger
	metrics   ports.CacheMetrics
}

// NewCacheHealthChecker creates a checker; pinger may be nil for in-process backends
func NewCacheHealthChecker(cacheType string, pinger Pinger, metrics ports.CacheMetrics) *CacheHealthChecker {
	return &CacheHealthChecker{
		cacheType: cacheType,
		pinger:    pinger,
		metrics:   metrics,
	}
}

// Check verifies the cache backend is reachable
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"type": c.cacheType,
		},
	}

	if c.metrics != nil {
		stats := c.metrics.GetStats()
		status.Details["hits"] = stats.Hits
		status.Details["misses"] = stats.Misses
		status.Details["hit_ratio"] = stats.HitRatio
	}

	if c.pinger != nil {
		if err := c.pinger.Ping(ctx); err != nil {
			status.Status = statusUnhealthy
			status.Error = err.Error()
		}
	}

	return status
}

// SystemHealthChecker aggregates component health checks
type SystemHealthChecker struct {
	checkers []ports.HealthChecker
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(checkers ...ports.HealthChecker) *SystemHealthChecker {
	return &SystemHealthChecker{checkers: checkers}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) (map[string]ports.HealthStatus, bool) {
	results := make(map[string]ports.HealthStatus, len(s.checkers))
	healthy := true

	for _, checker := range s.checkers {
		status := checker.Check(ctx)
		results[status.Component] = status
		if status.Status != statusHealthy {
			healthy = false
		}
	}

	return results, healthy
}
