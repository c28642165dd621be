// Command mock-weatherapi serves canned weatherapi.com forecast.json responses for local runs.
// Point WEATHER_API_BASE_URL at it, e.g. http://localhost:8081/v1.
package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

type condition struct {
	Text string `json:"text"`
}

type current struct {
	LastUpdated string    `json:"last_updated"`
	TempC       float64   `json:"temp_c"`
	TempF       float64   `json:"temp_f"`
	FeelsLikeC  float64   `json:"feelslike_c"`
	FeelsLikeF  float64   `json:"feelslike_f"`
	Condition   condition `json:"condition"`
}

type day struct {
	MaxTempC  float64   `json:"maxtemp_c"`
	MaxTempF  float64   `json:"maxtemp_f"`
	MinTempC  float64   `json:"mintemp_c"`
	MinTempF  float64   `json:"mintemp_f"`
	AvgTempC  float64   `json:"avgtemp_c"`
	AvgTempF  float64   `json:"avgtemp_f"`
	Condition condition `json:"condition"`
}

type forecastDay struct {
	Date string `json:"date"`
	Day  day    `json:"day"`
}

type forecastResponse struct {
	Current  current `json:"current"`
	Forecast struct {
		ForecastDay []forecastDay `json:"forecastday"`
	} `json:"forecast"`
}

func cannedForecast(c current, d day) forecastResponse {
	var r forecastResponse
	r.Current = c
	r.Forecast.ForecastDay = []forecastDay{{Date: c.LastUpdated[:10], Day: d}}
	return r
}

var forecasts = map[string]forecastResponse{
	"london": cannedForecast(
		current{LastUpdated: "2024-02-01 12:00", TempC: 10, TempF: 50, FeelsLikeC: 8.5, FeelsLikeF: 47.3, Condition: condition{Text: "Partly cloudy"}},
		day{MaxTempC: 12, MaxTempF: 53.6, MinTempC: 6, MinTempF: 42.8, AvgTempC: 9, AvgTempF: 48.2, Condition: condition{Text: "Light rain"}},
	),
	"paris": cannedForecast(
		current{LastUpdated: "2024-02-01 13:00", TempC: 14, TempF: 57.2, FeelsLikeC: 13, FeelsLikeF: 55.4, Condition: condition{Text: "Clear"}},
		day{MaxTempC: 16, MaxTempF: 60.8, MinTempC: 8, MinTempF: 46.4, AvgTempC: 12, AvgTempF: 53.6, Condition: condition{Text: "Sunny"}},
	),
	"berlin": cannedForecast(
		current{LastUpdated: "2024-02-01 13:00", TempC: 4, TempF: 39.2, FeelsLikeC: 1, FeelsLikeF: 33.8, Condition: condition{Text: "Overcast"}},
		day{MaxTempC: 5, MaxTempF: 41, MinTempC: -1, MinTempF: 30.2, AvgTempC: 2, AvgTempF: 35.6, Condition: condition{Text: "Cloudy"}},
	),
}

func lookupForecast(query string) (forecastResponse, bool) {
	query = strings.ToLower(query)
	for city, forecast := range forecasts {
		if strings.Contains(query, city) {
			return forecast, true
		}
	}
	return forecastResponse{}, false
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/v1/forecast.json", func(c *gin.Context) {
		query := c.Query("q")

		if c.Query("key") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": 1002, "message": "API key is invalid or not provided."}})
			return
		}
		if query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": 1003, "message": "Parameter q is missing."}})
			return
		}

		switch strings.ToLower(query) {
		case "servererror":
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		case "garbage":
			c.String(http.StatusOK, "<html>not json</html>")
			return
		case "empty":
			c.JSON(http.StatusOK, gin.H{})
			return
		}

		forecast, ok := lookupForecast(query)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": 1006, "message": "No matching location found."}})
			return
		}

		c.JSON(http.StatusOK, forecast)
	})

	return r
}

func main() {
	gin.SetMode(gin.ReleaseMode)

	addr := ":8081"
	if port := os.Getenv("MOCK_WEATHER_PORT"); port != "" {
		addr = ":" + port
	}

	slog.Info("Mock weather API server starting", "addr", addr)
	if err := newRouter().Run(addr); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
