package forecast

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CurrentConditions represents the provider's current observation for a location
type CurrentConditions struct {
	LastUpdated time.Time
	TempC       float64
	FeelsLikeC  float64
	TempF       float64
	FeelsLikeF  float64
	Condition   string
}

// DayForecast represents the aggregated forecast for the first forecast day
type DayForecast struct {
	MaxTempC  float64
	MaxTempF  float64
	MinTempC  float64
	MinTempF  float64
	AvgTempC  float64
	AvgTempF  float64
	Condition string
}

// Forecast is the normalized forecast record returned to callers
type Forecast struct {
	Current   CurrentConditions
	Day       DayForecast
	Address   string
	FromCache bool
}

// ForecastRequest represents a request for the forecast at a free-text address
type ForecastRequest struct {
	Address string
}

// IsValid validates forecast request
func (r *ForecastRequest) IsValid() error {
	if strings.TrimSpace(r.Address) == "" {
		return fmt.Errorf("address cannot be empty")
	}
	return nil
}

// NormalizeAddress trims surrounding whitespace from the address
func (r *ForecastRequest) NormalizeAddress() {
	r.Address = strings.TrimSpace(r.Address)
}

// CacheKey derives the cache key for a coordinate pair as "<latitude>-<longitude>".
// The display address never participates, so equal coordinates share an entry.
func CacheKey(latitude, longitude float64) string {
	return strconv.FormatFloat(latitude, 'f', -1, 64) + "-" + strconv.FormatFloat(longitude, 'f', -1, 64)
}

// MarkedFromCache returns a copy of the forecast flagged as served from cache
func (f *Forecast) MarkedFromCache() *Forecast {
	cached := *f
	cached.FromCache = true
	return &cached
}
