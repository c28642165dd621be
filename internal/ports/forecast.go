package ports

import (
	"context"
	"encoding/json"
	"time"
)

// Location represents a geocoded candidate for a free-text address
type Location struct {
	Latitude       float64
	Longitude      float64
	DisplayAddress string
	City           string
}

// GeoResolver resolves free-text addresses to candidate locations.
// Lookup failures are reported as an empty slice.
type GeoResolver interface {
	Resolve(ctx context.Context, address string) []Location
}

// RawForecastPayload is the decoded forecast.json body from the weather provider.
// Sections are pointers so that a missing section can be told apart from an empty one.
type RawForecastPayload struct {
	Current  *RawCurrent  `json:"current"`
	Forecast *RawForecast `json:"forecast"`
}

// RawCurrent represents the provider's current conditions section
type RawCurrent struct {
	LastUpdated string          `json:"last_updated"`
	TempC       float64         `json:"temp_c"`
	TempF       float64         `json:"temp_f"`
	FeelsLikeC  float64         `json:"feelslike_c"`
	FeelsLikeF  float64         `json:"feelslike_f"`
	Condition   json.RawMessage `json:"condition"`
}

// RawForecast represents the provider's forecast section
type RawForecast struct {
	ForecastDay []RawForecastDay `json:"forecastday"`
}

// RawForecastDay represents one entry of forecast.forecastday
type RawForecastDay struct {
	Date string  `json:"date"`
	Day  *RawDay `json:"day"`
}

// RawDay represents the aggregated day object of a forecast entry
type RawDay struct {
	MaxTempC  float64         `json:"maxtemp_c"`
	MaxTempF  float64         `json:"maxtemp_f"`
	MinTempC  float64         `json:"mintemp_c"`
	MinTempF  float64         `json:"mintemp_f"`
	AvgTempC  float64         `json:"avgtemp_c"`
	AvgTempF  float64         `json:"avgtemp_f"`
	Condition json.RawMessage `json:"condition"`
}

// WeatherClient defines the contract for retrieving a one-day forecast payload
type WeatherClient interface {
	Fetch(ctx context.Context, query string) (*RawForecastPayload, error)
}

// CurrentConditionsData represents cached current conditions
type CurrentConditionsData struct {
	LastUpdated time.Time `json:"last_updated"`
	TempC       float64   `json:"temp_c"`
	FeelsLikeC  float64   `json:"feelslike_c"`
	TempF       float64   `json:"temp_f"`
	FeelsLikeF  float64   `json:"feelslike_f"`
	Condition   string    `json:"condition"`
}

// DayForecastData represents the cached one-day forecast
type DayForecastData struct {
	MaxTempC  float64 `json:"maxtemp_c"`
	MaxTempF  float64 `json:"maxtemp_f"`
	MinTempC  float64 `json:"mintemp_c"`
	MinTempF  float64 `json:"mintemp_f"`
	AvgTempC  float64 `json:"avgtemp_c"`
	AvgTempF  float64 `json:"avgtemp_f"`
	Condition string  `json:"condition"`
}

// ForecastData represents a normalized forecast record as stored in the cache
type ForecastData struct {
	Current  CurrentConditionsData `json:"current"`
	Forecast DayForecastData       `json:"forecast"`
	Address  string                `json:"address"`
}

// ForecastCache defines the contract for caching normalized forecasts.
// Get returns a NotFound error on a miss or after the entry has expired.
type ForecastCache interface {
	Get(ctx context.Context, key string) (*ForecastData, error)
	Set(ctx context.Context, key string, forecast *ForecastData, ttl time.Duration) error
}
