package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Forecast pipeline
	GeoResolver     GeoResolver
	WeatherClient   WeatherClient
	ForecastCache   ForecastCache
	ForecastMetrics ForecastMetrics

	// Cache
	CacheMetrics CacheMetrics

	// Infrastructure
	Logger  Logger
	Closers []func() error
}
