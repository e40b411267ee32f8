package api

import (
	"context"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
)

// WeatherGateway defines the interface for weather-related external API calls
type WeatherGateway interface {
	// FetchCurrent gets the current conditions for query.City in query.Units.
	// Errors wrap ErrNotFound, ErrTransport or ErrMalformedResponse.
	FetchCurrent(ctx context.Context, query entity.WeatherQuery) (*entity.CurrentConditions, error)

	// FetchForecast gets one sample per day from the 5-day/3-hour forecast
	FetchForecast(ctx context.Context, query entity.WeatherQuery) (entity.ForecastSet, error)

	// Health reports whether the gateway is configured to reach the API
	Health() model.ComponentHealthStatus
}
