package api

import (
	"context"
	"fmt"
	"net/url"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
	"weather-app/internal/domain/model/external"
	"weather-app/pkg/http"
)

const (
	currentWeatherPath = "/weather"
	forecastPath       = "/forecast"
	apiKeyParam        = "appid"
)

// weatherGatewayImpl implements the WeatherGateway interface against OpenWeatherMap
type weatherGatewayImpl struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseUrl string, apiKey string, clientOptions http.ClientOptions) WeatherGateway {
	clientOptions.MaskedQueryParams = append(clientOptions.MaskedQueryParams, apiKeyParam)
	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	return &weatherGatewayImpl{
		baseURL:    baseUrl,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// FetchCurrent gets current conditions for a city
func (w *weatherGatewayImpl) FetchCurrent(ctx context.Context, query entity.WeatherQuery) (*entity.CurrentConditions, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(currentWeatherPath).
		WithQueryParams(w.queryParams(query)).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err := classifyResponse(status, err, errResp); err != nil {
		return nil, fmt.Errorf("current weather for '%s': %w", query.City, err)
	}

	conditions, err := toCurrentConditions(successResp.(*external.CurrentWeatherResponse))
	if err != nil {
		return nil, fmt.Errorf("current weather for '%s': %w", query.City, err)
	}
	return conditions, nil
}

// FetchForecast gets the daily forecast samples for a city
func (w *weatherGatewayImpl) FetchForecast(ctx context.Context, query entity.WeatherQuery) (entity.ForecastSet, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(forecastPath).
		WithQueryParams(w.queryParams(query)).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err := classifyResponse(status, err, errResp); err != nil {
		return nil, fmt.Errorf("forecast for '%s': %w", query.City, err)
	}

	forecast, err := toForecastSet(successResp.(*external.ForecastResponse))
	if err != nil {
		return nil, fmt.Errorf("forecast for '%s': %w", query.City, err)
	}
	return forecast, nil
}

func (w *weatherGatewayImpl) queryParams(query entity.WeatherQuery) map[string]string {
	units := query.Units
	if units == "" {
		units = entity.Metric
	}
	return map[string]string{
		"q":         query.City,
		"units":     string(units),
		apiKeyParam: w.apiKey,
	}
}

// Health reports UP when the API key and base URL are configured
func (w *weatherGatewayImpl) Health() model.ComponentHealthStatus {
	details := map[string]string{"base_url": w.baseURL}

	if _, err := url.ParseRequestURI(w.baseURL); err != nil {
		details["error"] = "invalid base url"
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
	if w.apiKey == "" {
		details["error"] = "api key not configured"
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}

// classifyResponse maps the HTTP client outcome to a failure kind
func classifyResponse(status int, err error, errResp any) error {
	switch {
	case status == 0 && err != nil:
		return fmt.Errorf("%w: %v", ErrTransport, err)
	case status < 200 || status >= 300:
		message := ""
		if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr != nil {
			message = apiErr.Message
		}
		return fmt.Errorf("%w: status %d %s", ErrNotFound, status, message)
	case err != nil:
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
