package api

import (
	"context"
	"fmt"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
)

// Limiter is satisfied by ratelimit.LimiterGateway
type Limiter interface {
	Wait(ctx context.Context) error
}

type rateLimitedWeatherGateway struct {
	next    WeatherGateway
	limiter Limiter
}

// NewRateLimitedWeatherGateway waits on limiter before every call to next
func NewRateLimitedWeatherGateway(next WeatherGateway, limiter Limiter) WeatherGateway {
	return &rateLimitedWeatherGateway{next: next, limiter: limiter}
}

func (r *rateLimitedWeatherGateway) FetchCurrent(ctx context.Context, query entity.WeatherQuery) (*entity.CurrentConditions, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", ErrTransport, err)
	}
	return r.next.FetchCurrent(ctx, query)
}

func (r *rateLimitedWeatherGateway) FetchForecast(ctx context.Context, query entity.WeatherQuery) (entity.ForecastSet, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", ErrTransport, err)
	}
	return r.next.FetchForecast(ctx, query)
}

func (r *rateLimitedWeatherGateway) Health() model.ComponentHealthStatus {
	return r.next.Health()
}
