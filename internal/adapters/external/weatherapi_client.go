// Package external provides adapters for external services
// These adapters implement ports for the weather provider, geocoding and cache backends.
package external

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
	"forecastapi.app/pkg/validation"
)

const forecastDays = "1"

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WeatherAPIClientAdapter implements WeatherClient port for weatherapi.com forecast.json
type WeatherAPIClientAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// WeatherAPIClientParams holds parameters for creating the weatherapi.com client
type WeatherAPIClientParams struct {
	APIKey     string
	BaseURL    string
	HTTPClient HTTPClient
	Logger     ports.Logger
}

// NewWeatherAPIClientAdapter creates a new weatherapi.com client adapter
func NewWeatherAPIClientAdapter(params WeatherAPIClientParams) *WeatherAPIClientAdapter {
	client := params.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	return &WeatherAPIClientAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(params.BaseURL, "/"),
		client:  client,
		logger:  params.Logger,
	}
}

// Fetch retrieves a one-day forecast for query. Exactly one request is made.
func (c *WeatherAPIClientAdapter) Fetch(ctx context.Context, query string) (*ports.RawForecastPayload, error) {
	requestURL, err := c.buildURL(query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.NewMalformedProviderURLError("failed to build weather provider request", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.NewTransportFailureError("failed to call weather provider", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close weather provider response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.NewNonSuccessStatusError(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewTransportFailureError("failed to read weather provider response", err)
	}

	var payload ports.RawForecastPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.NewUnparseableBodyError(err)
	}

	return &payload, nil
}

func (c *WeatherAPIClientAdapter) buildURL(query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", errors.NewMalformedProviderURLError("forecast query cannot be empty", nil)
	}
	if validation.HasControlCharacters(query) {
		return "", errors.NewMalformedProviderURLError("forecast query contains control characters", nil)
	}
	if !validation.IsHTTPURL(c.baseURL) {
		return "", errors.NewMalformedProviderURLError("weather provider base URL must be absolute http(s)", nil)
	}

	endpoint, err := url.Parse(c.baseURL + "/forecast.json")
	if err != nil {
		return "", errors.NewMalformedProviderURLError("invalid weather provider base URL", err)
	}

	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("q", query)
	values.Set("days", forecastDays)
	values.Set("aqi", "no")
	values.Set("alerts", "no")
	endpoint.RawQuery = values.Encode()

	return endpoint.String(), nil
}
