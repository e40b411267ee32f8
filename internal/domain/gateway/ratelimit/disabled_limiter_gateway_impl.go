package ratelimit

import (
	"context"

	"weather-app/internal/domain/model"
)

type disabledLimiterGatewayImpl struct{}

// NewDisabledLimiterGateway never throttles
func NewDisabledLimiterGateway() LimiterGateway {
	return disabledLimiterGatewayImpl{}
}

func (disabledLimiterGatewayImpl) Wait(ctx context.Context) error {
	return ctx.Err()
}

func (disabledLimiterGatewayImpl) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: map[string]string{"mode": "disabled"},
	}
}
