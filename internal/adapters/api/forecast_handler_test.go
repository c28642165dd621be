package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var bakerStreet = ports.Location{
	Latitude:       51.5,
	Longitude:      -0.1,
	DisplayAddress: "221B Baker Street, London",
	City:           "London",
}

func bakerStreetPayload() *ports.RawForecastPayload {
	return &ports.RawForecastPayload{
		Current: &ports.RawCurrent{
			LastUpdated: "2024-02-01 12:00",
			TempC:       10,
			TempF:       50,
			FeelsLikeC:  8,
			FeelsLikeF:  46.4,
			Condition:   []byte(`{"text":"Cloudy"}`),
		},
		Forecast: &ports.RawForecast{
			ForecastDay: []ports.RawForecastDay{{
				Date: "2024-02-01",
				Day: &ports.RawDay{
					MaxTempC:  12,
					MaxTempF:  53.6,
					MinTempC:  8,
					MinTempF:  46.4,
					AvgTempC:  10,
					AvgTempF:  50,
					Condition: []byte(`{"text":"Light rain"}`),
				},
			}},
		},
	}
}

func forecastRequest(address string) *http.Request {
	return httptest.NewRequest(http.MethodGet, "/api/forecast?address="+url.QueryEscape(address), nil)
}

func TestForecastHandler_Fresh(t *testing.T) {
	m := newServerMocks(t)
	router := m.router(t, nil)

	m.geoResolver.EXPECT().Resolve(mock.Anything, "221B Baker Street").Return([]ports.Location{bakerStreet})
	m.cache.EXPECT().Get(mock.Anything, "51.5--0.1").Return(nil, errors.NewNotFoundError("cache miss"))
	m.weatherClient.EXPECT().Fetch(mock.Anything, bakerStreet.DisplayAddress).Return(bakerStreetPayload(), nil)
	m.cache.EXPECT().Set(mock.Anything, "51.5--0.1", mock.Anything, 30*time.Minute).Return(nil)
	m.metrics.EXPECT().RecordOutcome(ports.OutcomeFresh)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, forecastRequest("221B Baker Street"))

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotContains(t, body, "from_cache")
	assert.Equal(t, bakerStreet.DisplayAddress, body["address"])

	var response ForecastResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 10.0, response.Current.TempC)
	assert.Equal(t, "Cloudy", response.Current.Condition)
	assert.Equal(t, 12.0, response.Forecast.MaxTempC)
	assert.Equal(t, "Light rain", response.Forecast.Condition)
	assert.True(t, time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC).Equal(response.Current.LastUpdated))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestForecastHandler_FromCache(t *testing.T) {
	m := newServerMocks(t)
	router := m.router(t, nil)

	m.geoResolver.EXPECT().Resolve(mock.Anything, "Baker Street").Return([]ports.Location{bakerStreet})
	m.cache.EXPECT().Get(mock.Anything, "51.5--0.1").Return(&ports.ForecastData{
		Current:  ports.CurrentConditionsData{TempC: 9, Condition: "Clear"},
		Forecast: ports.DayForecastData{MaxTempC: 11, Condition: "Sunny"},
		Address:  bakerStreet.DisplayAddress,
	}, nil)
	m.metrics.EXPECT().RecordOutcome(ports.OutcomeCacheHit)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, forecastRequest("Baker Street"))

	require.Equal(t, http.StatusOK, w.Code)

	var response ForecastResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.FromCache)
	assert.Equal(t, 9.0, response.Current.TempC)
	assert.Equal(t, "Sunny", response.Forecast.Condition)
}

func TestForecastHandler_InvalidAddress(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "Missing", path: "/api/forecast"},
		{name: "Empty", path: "/api/forecast?address="},
		{name: "Blank", path: "/api/forecast?address=%20%20%09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newServerMocks(t)
			router := m.router(t, nil)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, "address parameter is required", response.Error)
		})
	}
}

func TestForecastHandler_NoForecast(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *serverMocks)
	}{
		{
			name: "NoLocation",
			setup: func(m *serverMocks) {
				m.geoResolver.EXPECT().Resolve(mock.Anything, "Atlantis").Return(nil)
				m.metrics.EXPECT().RecordOutcome(ports.OutcomeNoLocation)
			},
		},
		{
			name: "ProviderFailure",
			setup: func(m *serverMocks) {
				m.geoResolver.EXPECT().Resolve(mock.Anything, "Atlantis").Return([]ports.Location{bakerStreet})
				m.cache.EXPECT().Get(mock.Anything, "51.5--0.1").Return(nil, errors.NewNotFoundError("cache miss"))
				m.weatherClient.EXPECT().Fetch(mock.Anything, bakerStreet.DisplayAddress).
					Return(nil, errors.NewNonSuccessStatusError(http.StatusInternalServerError))
				m.metrics.EXPECT().RecordOutcome(ports.OutcomeFetchFailed)
			},
		},
		{
			name: "IncompletePayload",
			setup: func(m *serverMocks) {
				m.geoResolver.EXPECT().Resolve(mock.Anything, "Atlantis").Return([]ports.Location{bakerStreet})
				m.cache.EXPECT().Get(mock.Anything, "51.5--0.1").Return(nil, errors.NewNotFoundError("cache miss"))
				m.weatherClient.EXPECT().Fetch(mock.Anything, bakerStreet.DisplayAddress).
					Return(&ports.RawForecastPayload{}, nil)
				m.metrics.EXPECT().RecordOutcome(ports.OutcomeNormalizeFailed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newServerMocks(t)
			router := m.router(t, nil)
			tt.setup(m)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, forecastRequest("Atlantis"))

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.JSONEq(t, `{"error":"no forecast available"}`, w.Body.String())
		})
	}
}
