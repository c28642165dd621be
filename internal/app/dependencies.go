package app

import (
	"fmt"
	"log/slog"

	"forecastapi.app/internal/adapters/external"
	"forecastapi.app/internal/adapters/infrastructure"
	"forecastapi.app/internal/config"
	"forecastapi.app/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type DependencyContainer struct {
	config        *config.Config
	registry      *prometheus.Registry
	healthChecker *infrastructure.SystemHealthChecker
	ports         *ports.ApplicationPorts
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config:   cfg,
		registry: prometheus.NewRegistry(),
		ports:    &ports.ApplicationPorts{},
	}

	container.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	container.initializeLogger()

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeLogger() {
	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(nil)

	if path := c.config.Logging.FilePath; path != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(path, c.config.Logging.Level)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			logger = infrastructure.NewMultiLogger(logger, fileLogger)
			c.ports.Closers = append(c.ports.Closers, fileLogger.Close)
			slog.Info("File logging enabled", "path", path)
		}
	}

	c.ports.Logger = logger
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")
	logger := c.ports.Logger

	cacheFactory := external.NewCacheProviderFactory(logger)
	backend, err := cacheFactory.CreateCacheProvider(&c.config.Cache)
	if err != nil {
		return fmt.Errorf("create cache provider: %w", err)
	}
	c.ports.Closers = append(c.ports.Closers, backend.Close)

	cacheType := c.config.Cache.Type.String()
	cacheMetrics := infrastructure.NewPrometheusCacheMetrics(c.registry, cacheType)
	instrumented := external.NewInstrumentedCacheProvider(backend.Provider, cacheMetrics, logger)

	slog.Info("Cache provider initialized", "type", cacheType)

	weatherClient := external.NewWeatherClientLoggingDecorator(
		external.NewWeatherAPIClientAdapter(external.WeatherAPIClientParams{
			APIKey:  c.config.Weather.APIKey,
			BaseURL: c.config.Weather.BaseURL,
			Logger:  logger,
		}),
		logger,
	)

	geoResolver := external.NewGeocoderResolverAdapter(external.GeocoderResolverParams{
		APIKey: c.config.Geocoding.APIKey,
		Logger: logger,
	})

	// In-process backends have nothing to ping.
	var pinger infrastructure.Pinger
	if p, ok := backend.Provider.(infrastructure.Pinger); ok {
		pinger = p
	}
	c.healthChecker = infrastructure.NewSystemHealthChecker(
		infrastructure.NewCacheHealthChecker(cacheType, pinger, cacheMetrics),
	)

	c.ports.GeoResolver = geoResolver
	c.ports.WeatherClient = weatherClient
	c.ports.ForecastCache = external.NewForecastCacheAdapter(instrumented)
	c.ports.ForecastMetrics = infrastructure.NewPrometheusForecastMetrics(c.registry)
	c.ports.CacheMetrics = cacheMetrics

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Registry returns the Prometheus registry served on /metrics
func (c *DependencyContainer) Registry() *prometheus.Registry {
	return c.registry
}

func (c *DependencyContainer) HealthChecker() *infrastructure.SystemHealthChecker {
	return c.healthChecker
}

// Cleanup releases resources in reverse order of acquisition
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	closers := c.ports.Closers
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.ports.Closers = nil
	return firstErr
}
