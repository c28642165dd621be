package forecast

import (
	"context"
	"fmt"
	"time"

	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
)

// DefaultCacheTTL is how long a normalized forecast stays cached per coordinate pair
const DefaultCacheTTL = 30 * time.Minute

type UseCase struct {
	geoResolver   ports.GeoResolver
	weatherClient ports.WeatherClient
	cache         ports.ForecastCache
	metrics       ports.ForecastMetrics
	logger        ports.Logger
	cacheTTL      time.Duration
}

type UseCaseDependencies struct {
	GeoResolver   ports.GeoResolver
	WeatherClient ports.WeatherClient
	Cache         ports.ForecastCache
	Metrics       ports.ForecastMetrics
	Logger        ports.Logger
	CacheTTL      time.Duration
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.GeoResolver == nil {
		return nil, errors.NewValidationError("geo resolver is required")
	}
	if deps.WeatherClient == nil {
		return nil, errors.NewValidationError("weather client is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	cacheTTL := deps.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}

	return &UseCase{
		geoResolver:   deps.GeoResolver,
		weatherClient: deps.WeatherClient,
		cache:         deps.Cache,
		metrics:       deps.Metrics,
		logger:        deps.Logger,
		cacheTTL:      cacheTTL,
	}, nil
}

// GetForecast returns the forecast for a free-text address.
// Every failure collapses to ok == false; Lookup exposes the failure kind.
// Provider failures are already logged by the weather client.
func (uc *UseCase) GetForecast(ctx context.Context, address string) (*Forecast, bool) {
	forecast, err := uc.Lookup(ctx, address)
	if err != nil {
		if errors.IsProviderError(err) {
			return nil, false
		}
		uc.logger.Info("No forecast available",
			ports.F("address", address),
			ports.F("reason", errors.TypeOf(err).String()),
			ports.F("error", err))
		return nil, false
	}
	return forecast, true
}

// Lookup runs the resolve, cache, fetch and normalize pipeline and reports
// the typed failure that stopped it.
func (uc *UseCase) Lookup(ctx context.Context, address string) (*Forecast, error) {
	request := ForecastRequest{Address: address}
	request.NormalizeAddress()
	if err := request.IsValid(); err != nil {
		uc.metrics.RecordOutcome(ports.OutcomeNoLocation)
		return nil, errors.NewNoLocationFoundError(address)
	}

	locations := uc.geoResolver.Resolve(ctx, request.Address)
	if len(locations) == 0 {
		uc.metrics.RecordOutcome(ports.OutcomeNoLocation)
		return nil, errors.NewNoLocationFoundError(request.Address)
	}

	location := locations[0]
	cacheKey := CacheKey(location.Latitude, location.Longitude)
	uc.logger.Debug("Address resolved",
		ports.F("address", request.Address),
		ports.F("display_address", location.DisplayAddress),
		ports.F("cache_key", cacheKey))

	if cached := uc.readCache(ctx, cacheKey); cached != nil {
		uc.metrics.RecordOutcome(ports.OutcomeCacheHit)
		return cached.MarkedFromCache(), nil
	}

	payload, err := uc.weatherClient.Fetch(ctx, location.DisplayAddress)
	if err != nil {
		uc.metrics.RecordOutcome(ports.OutcomeFetchFailed)
		return nil, fmt.Errorf("fetch forecast for %s: %w", location.DisplayAddress, err)
	}

	forecast, err := Normalize(payload)
	if err != nil {
		uc.metrics.RecordOutcome(ports.OutcomeNormalizeFailed)
		return nil, fmt.Errorf("normalize forecast for %s: %w", location.DisplayAddress, err)
	}
	forecast.Address = location.DisplayAddress

	if cacheErr := uc.cache.Set(ctx, cacheKey, toForecastData(forecast), uc.cacheTTL); cacheErr != nil {
		uc.logger.Warn("Failed to cache forecast",
			ports.F("cache_key", cacheKey),
			ports.F("error", cacheErr))
	}

	uc.metrics.RecordOutcome(ports.OutcomeFresh)
	return forecast, nil
}

// readCache returns nil on a miss. Backend errors are logged and treated as a miss.
func (uc *UseCase) readCache(ctx context.Context, key string) *Forecast {
	cached, err := uc.cache.Get(ctx, key)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Warn("Forecast cache read failed",
				ports.F("cache_key", key),
				ports.F("error", err))
		}
		return nil
	}
	if cached == nil {
		return nil
	}

	uc.logger.Debug("Forecast found in cache", ports.F("cache_key", key))
	return fromForecastData(cached)
}

func toForecastData(f *Forecast) *ports.ForecastData {
	return &ports.ForecastData{
		Current: ports.CurrentConditionsData{
			LastUpdated: f.Current.LastUpdated,
			TempC:       f.Current.TempC,
			FeelsLikeC:  f.Current.FeelsLikeC,
			TempF:       f.Current.TempF,
			FeelsLikeF:  f.Current.FeelsLikeF,
			Condition:   f.Current.Condition,
		},
		Forecast: ports.DayForecastData{
			MaxTempC:  f.Day.MaxTempC,
			MaxTempF:  f.Day.MaxTempF,
			MinTempC:  f.Day.MinTempC,
			MinTempF:  f.Day.MinTempF,
			AvgTempC:  f.Day.AvgTempC,
			AvgTempF:  f.Day.AvgTempF,
			Condition: f.Day.Condition,
		},
		Address: f.Address,
	}
}

func fromForecastData(data *ports.ForecastData) *Forecast {
	return &Forecast{
		Current: CurrentConditions{
			LastUpdated: data.Current.LastUpdated,
			TempC:       data.Current.TempC,
			FeelsLikeC:  data.Current.FeelsLikeC,
			TempF:       data.Current.TempF,
			FeelsLikeF:  data.Current.FeelsLikeF,
			Condition:   data.Current.Condition,
		},
		Day: DayForecast{
			MaxTempC:  data.Forecast.MaxTempC,
			MaxTempF:  data.Forecast.MaxTempF,
			MinTempC:  data.Forecast.MinTempC,
			MinTempF:  data.Forecast.MinTempF,
			AvgTempC:  data.Forecast.AvgTempC,
			AvgTempF:  data.Forecast.AvgTempF,
			Condition: data.Forecast.Condition,
		},
		Address: data.Address,
	}
}
