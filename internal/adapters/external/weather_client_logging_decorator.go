package external

import (
	"context"
	"time"

	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
)

// WeatherClientLoggingDecorator decorates a weather client with structured logging
type WeatherClientLoggingDecorator struct {
	client ports.WeatherClient
	logger ports.Logger
}

// NewWeatherClientLoggingDecorator creates a new logging decorator for weather clients
func NewWeatherClientLoggingDecorator(client ports.WeatherClient, logger ports.Logger) ports.WeatherClient {
	return &WeatherClientLoggingDecorator{
		client: client,
		logger: logger,
	}
}

// Fetch wraps the client call with request and response logging
func (d *WeatherClientLoggingDecorator) Fetch(ctx context.Context, query string) (*ports.RawForecastPayload, error) {
	d.logger.Info("Weather provider request started",
		ports.F("query", query),
		ports.F("event", "request"))

	startTime := time.Now()
	payload, err := d.client.Fetch(ctx, query)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather provider request failed",
			ports.F("query", query),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error_type", errors.TypeOf(err).String()),
			ports.F("error", err.Error()))
		return nil, err
	}

	fields := []ports.Field{
		ports.F("query", query),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
	}
	if payload != nil && payload.Current != nil {
		fields = append(fields,
			ports.F("temp_c", payload.Current.TempC),
			ports.F("last_updated", payload.Current.LastUpdated))
	}
	d.logger.Info("Weather provider request completed", fields...)

	return payload, nil
}
