package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mocks "forecastapi.app/internal/mocks"
	"forecastapi.app/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPServerAdapter_MissingDependencies(t *testing.T) {
	_, err := NewHTTPServerAdapter(ServerOptions{})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "forecast use case is required")

	_, err = NewHTTPServerAdapter(ServerOptions{
		ForecastUseCase: nil,
		HealthChecker:   stubHealthChecker{healthy: true},
		Gatherer:        prometheus.NewRegistry(),
		Logger:          mocks.NewLogger(t),
	})
	assert.True(t, errors.IsValidationError(err))
}

func TestServer_MetricsEndpoint(t *testing.T) {
	m := newServerMocks(t)
	promauto.With(m.registry).NewCounter(prometheus.CounterOpts{
		Name: "forecast_test_total",
		Help: "Test counter",
	}).Inc()
	router := m.router(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "forecast_test_total 1")
}

func TestServer_RequestID(t *testing.T) {
	m := newServerMocks(t)
	router := m.router(t, nil)

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("X-Request-ID", "req-123")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	})

	t.Run("Generated", func(t *testing.T) {
		first := httptest.NewRecorder()
		router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/health", nil))
		second := httptest.NewRecorder()
		router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		assert.Len(t, first.Header().Get("X-Request-ID"), 36)
		assert.NotEqual(t, first.Header().Get("X-Request-ID"), second.Header().Get("X-Request-ID"))
	})
}

func TestServer_UnknownRoute(t *testing.T) {
	m := newServerMocks(t)
	router := m.router(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/weather?city=London", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
