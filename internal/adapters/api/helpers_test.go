package api

import (
	"context"
	"testing"

	"forecastapi.app/internal/core/forecast"
	mocks "forecastapi.app/internal/mocks"
	"forecastapi.app/internal/ports"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// allowLogging accepts any log call with up to six fields
func allowLogging(logger *mocks.Logger) {
	args := []interface{}{mock.Anything}
	for i := 0; i < 7; i++ {
		logger.EXPECT().Debug(args[0], args[1:]...).Maybe()
		logger.EXPECT().Info(args[0], args[1:]...).Maybe()
		logger.EXPECT().Warn(args[0], args[1:]...).Maybe()
		logger.EXPECT().Error(args[0], args[1:]...).Maybe()
		args = append(args, mock.Anything)
	}
}

type stubHealthChecker struct {
	components map[string]ports.HealthStatus
	healthy    bool
}

func (s stubHealthChecker) CheckAll(context.Context) (map[string]ports.HealthStatus, bool) {
	return s.components, s.healthy
}

type serverMocks struct {
	geoResolver   *mocks.GeoResolver
	weatherClient *mocks.WeatherClient
	cache         *mocks.ForecastCache
	metrics       *mocks.ForecastMetrics
	logger        *mocks.Logger
	registry      *prometheus.Registry
}

func newServerMocks(t *testing.T) *serverMocks {
	m := &serverMocks{
		geoResolver:   mocks.NewGeoResolver(t),
		weatherClient: mocks.NewWeatherClient(t),
		cache:         mocks.NewForecastCache(t),
		metrics:       mocks.NewForecastMetrics(t),
		logger:        mocks.NewLogger(t),
		registry:      prometheus.NewRegistry(),
	}
	allowLogging(m.logger)
	return m
}

func (m *serverMocks) router(t *testing.T, health HealthChecker) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	useCase, err := forecast.NewUseCase(forecast.UseCaseDependencies{
		GeoResolver:   m.geoResolver,
		WeatherClient: m.weatherClient,
		Cache:         m.cache,
		Metrics:       m.metrics,
		Logger:        m.logger,
	})
	require.NoError(t, err)

	if health == nil {
		health = stubHealthChecker{components: map[string]ports.HealthStatus{}, healthy: true}
	}

	server, err := NewHTTPServerAdapter(ServerOptions{
		ForecastUseCase: useCase,
		HealthChecker:   health,
		Gatherer:        m.registry,
		Logger:          m.logger,
	})
	require.NoError(t, err)
	return server.GetRouter()
}
