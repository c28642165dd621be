package infrastructure

import (
	"forecastapi.app/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusForecastMetrics implements the ForecastMetrics port
type PrometheusForecastMetrics struct {
	outcomes *prometheus.CounterVec
}

// NewPrometheusForecastMetrics registers the forecast outcome counter on reg
func NewPrometheusForecastMetrics(reg prometheus.Registerer) *PrometheusForecastMetrics {
	outcomes := promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Name: "forecast_requests_total",
		Help: "Forecast lookups by outcome",
	}, []string{"outcome"})

	// pre-create every outcome series
	for _, outcome := range []string{
		ports.OutcomeFresh,
		ports.OutcomeCacheHit,
		ports.OutcomeNoLocation,
		ports.OutcomeFetchFailed,
		ports.OutcomeNormalizeFailed,
	} {
		outcomes.WithLabelValues(outcome)
	}

	return &PrometheusForecastMetrics{outcomes: outcomes}
}

func (m *PrometheusForecastMetrics) RecordOutcome(outcome string) {
	m.outcomes.WithLabelValues(outcome).Inc()
}
