package health

import (
	"context"

	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/gateway/ratelimit"
	"weather-app/internal/domain/model"
)

type healthUseCase struct {
	weatherGateway api.WeatherGateway
	limiterGateway ratelimit.LimiterGateway
}

func NewHealthUseCase(weatherGateway api.WeatherGateway, limiterGateway ratelimit.LimiterGateway) UseCase {
	return &healthUseCase{
		weatherGateway: weatherGateway,
		limiterGateway: limiterGateway,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	weatherHealth := useCase.weatherGateway.Health()
	limiterHealth := useCase.limiterGateway.Health(ctx)

	overallStatus := model.StatusUp
	if weatherHealth.Status != model.StatusUp || limiterHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:      overallStatus,
		WeatherAPI:  weatherHealth,
		RateLimiter: limiterHealth,
	}
}
