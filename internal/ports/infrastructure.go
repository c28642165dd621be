package ports

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Forecast request outcomes reported to ForecastMetrics
const (
	OutcomeFresh           = "fresh"
	OutcomeCacheHit        = "cache_hit"
	OutcomeNoLocation      = "no_location"
	OutcomeFetchFailed     = "fetch_failed"
	OutcomeNormalizeFailed = "normalize_failed"
)

// ForecastMetrics defines the contract for recording forecast pipeline outcomes
type ForecastMetrics interface {
	RecordOutcome(outcome string)
}
