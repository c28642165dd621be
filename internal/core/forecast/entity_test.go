package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheKey(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		expected  string
	}{
		{name: "BakerStreet", latitude: 51.5, longitude: -0.1, expected: "51.5--0.1"},
		{name: "IntegerCoordinates", latitude: 123, longitude: 456, expected: "123-456"},
		{name: "Precise", latitude: 40.712776, longitude: -74.005974, expected: "40.712776--74.005974"},
		{name: "Origin", latitude: 0, longitude: 0, expected: "0-0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CacheKey(tt.latitude, tt.longitude))
		})
	}
}

func TestCacheKey_Deterministic(t *testing.T) {
	assert.Equal(t, CacheKey(51.5, -0.1), CacheKey(51.5, -0.1))
	assert.NotEqual(t, CacheKey(51.5, -0.1), CacheKey(-0.1, 51.5))
}

func TestForecastRequest_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		request ForecastRequest
		wantErr bool
	}{
		{name: "ValidRequest", request: ForecastRequest{Address: "221B Baker Street"}},
		{name: "EmptyAddress", request: ForecastRequest{Address: ""}, wantErr: true},
		{name: "WhitespaceOnlyAddress", request: ForecastRequest{Address: " \t "}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.IsValid()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "address cannot be empty")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestForecastRequest_NormalizeAddress(t *testing.T) {
	request := ForecastRequest{Address: "\t 221B Baker Street  "}
	request.NormalizeAddress()
	assert.Equal(t, "221B Baker Street", request.Address)
}

func TestForecast_MarkedFromCache(t *testing.T) {
	original := &Forecast{
		Current: CurrentConditions{TempC: 10, Condition: "Cloudy", LastUpdated: time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)},
		Day:     DayForecast{MaxTempC: 12, MinTempC: 8},
		Address: "221B Baker Street, London",
	}

	cached := original.MarkedFromCache()

	assert.True(t, cached.FromCache)
	assert.False(t, original.FromCache)
	assert.Equal(t, original.Current, cached.Current)
	assert.Equal(t, original.Day, cached.Day)
	assert.Equal(t, original.Address, cached.Address)
}
