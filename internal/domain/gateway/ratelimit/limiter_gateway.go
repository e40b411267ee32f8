package ratelimit

import (
	"context"

	"weather-app/internal/domain/model"
)

// LimiterGateway throttles outbound weather API calls
type LimiterGateway interface {
	// Wait blocks until a call may proceed or ctx is done
	Wait(ctx context.Context) error
	Health(ctx context.Context) model.ComponentHealthStatus
}
