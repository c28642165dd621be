package api

import (
	"net/http"
	"time"

	"forecastapi.app/internal/core/forecast"
	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
	"github.com/gin-gonic/gin"
)

// ForecastQuery represents the query string of GET /api/forecast
type ForecastQuery struct {
	Address string `form:"address" binding:"required,notblank"`
}

// CurrentResponse represents current conditions in the HTTP response
type CurrentResponse struct {
	LastUpdated time.Time `json:"last_updated"`
	TempC       float64   `json:"temp_c"`
	FeelsLikeC  float64   `json:"feelslike_c"`
	TempF       float64   `json:"temp_f"`
	FeelsLikeF  float64   `json:"feelslike_f"`
	Condition   string    `json:"condition"`
}

// DayResponse represents the one-day forecast in the HTTP response
type DayResponse struct {
	MaxTempC  float64 `json:"maxtemp_c"`
	MaxTempF  float64 `json:"maxtemp_f"`
	MinTempC  float64 `json:"mintemp_c"`
	MinTempF  float64 `json:"mintemp_f"`
	AvgTempC  float64 `json:"avgtemp_c"`
	AvgTempF  float64 `json:"avgtemp_f"`
	Condition string  `json:"condition"`
}

// ForecastResponse represents the HTTP response for forecast data
type ForecastResponse struct {
	Current   CurrentResponse `json:"current"`
	Forecast  DayResponse     `json:"forecast"`
	Address   string          `json:"address"`
	FromCache bool            `json:"from_cache,omitempty"`
}

const noForecastMessage = "no forecast available"

// getForecast handles GET /api/forecast requests
func (s *HTTPServerAdapter) getForecast(c *gin.Context) {
	var query ForecastQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.logger.Debug("Forecast query rejected", ports.F("error", err))
		s.handleError(c, errors.NewValidationError("address parameter is required"))
		return
	}

	result, ok := s.forecastUseCase.GetForecast(c.Request.Context(), query.Address)
	if !ok {
		s.handleError(c, errors.NewNotFoundError(noForecastMessage))
		return
	}

	s.logger.Debug("Forecast result",
		ports.F("address", query.Address),
		ports.F("from_cache", result.FromCache),
		ports.F("request_id", c.GetString(requestIDKey)))
	c.JSON(http.StatusOK, toForecastResponse(result))
}

func toForecastResponse(f *forecast.Forecast) ForecastResponse {
	return ForecastResponse{
		Current: CurrentResponse{
			LastUpdated: f.Current.LastUpdated,
			TempC:       f.Current.TempC,
			FeelsLikeC:  f.Current.FeelsLikeC,
			TempF:       f.Current.TempF,
			FeelsLikeF:  f.Current.FeelsLikeF,
			Condition:   f.Current.Condition,
		},
		Forecast: DayResponse{
			MaxTempC:  f.Day.MaxTempC,
			MaxTempF:  f.Day.MaxTempF,
			MinTempC:  f.Day.MinTempC,
			MinTempF:  f.Day.MinTempF,
			AvgTempC:  f.Day.AvgTempC,
			AvgTempF:  f.Day.AvgTempF,
			Condition: f.Day.Condition,
		},
		Address:   f.Address,
		FromCache: f.FromCache,
	}
}
