package forecast

import (
	"bytes"
	"encoding/json"
	"time"

	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
)

// lastUpdatedLayouts lists the accepted last_updated formats, weatherapi.com's first.
var lastUpdatedLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// Normalize maps a provider payload onto a Forecast.
// Values are copied without unit conversion; only last_updated is parsed.
func Normalize(payload *ports.RawForecastPayload) (*Forecast, error) {
	if payload == nil {
		return nil, errors.NewIncompleteForecastPayloadError("payload is empty")
	}
	if payload.Current == nil {
		return nil, errors.NewIncompleteForecastPayloadError("payload has no current section")
	}
	if payload.Forecast == nil {
		return nil, errors.NewIncompleteForecastPayloadError("payload has no forecast section")
	}
	if len(payload.Forecast.ForecastDay) == 0 {
		return nil, errors.NewIncompleteForecastPayloadError("forecast.forecastday is empty")
	}
	day := payload.Forecast.ForecastDay[0].Day
	if day == nil {
		return nil, errors.NewIncompleteForecastPayloadError("first forecast day has no day section")
	}

	lastUpdated, err := parseLastUpdated(payload.Current.LastUpdated)
	if err != nil {
		return nil, err
	}

	current := payload.Current
	return &Forecast{
		Current: CurrentConditions{
			LastUpdated: lastUpdated,
			TempC:       current.TempC,
			FeelsLikeC:  current.FeelsLikeC,
			TempF:       current.TempF,
			FeelsLikeF:  current.FeelsLikeF,
			Condition:   conditionText(current.Condition),
		},
		Day: DayForecast{
			MaxTempC:  day.MaxTempC,
			MaxTempF:  day.MaxTempF,
			MinTempC:  day.MinTempC,
			MinTempF:  day.MinTempF,
			AvgTempC:  day.AvgTempC,
			AvgTempF:  day.AvgTempF,
			Condition: conditionText(day.Condition),
		},
	}, nil
}

func parseLastUpdated(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range lastUpdatedLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, errors.NewTimestampParseFailureError(value, lastErr)
}

// conditionText accepts either a plain string or weatherapi.com's {"text": ...} object.
func conditionText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	var object struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &object); err == nil {
		return object.Text
	}
	return ""
}
