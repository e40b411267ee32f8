package ratelimit

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/time/rate"

	"weather-app/internal/domain/model"
)

type localLimiterGatewayImpl struct {
	limiter *rate.Limiter
}

// NewLocalLimiterGateway allows requestsPerSec calls per second in this process, with bursts up to burst
func NewLocalLimiterGateway(requestsPerSec float64, burst int) (LimiterGateway, error) {
	if requestsPerSec <= 0 {
		return nil, fmt.Errorf("invalid rate: %v, must be positive", requestsPerSec)
	}
	if burst < 1 {
		burst = 1
	}
	return &localLimiterGatewayImpl{limiter: rate.NewLimiter(rate.Limit(requestsPerSec), burst)}, nil
}

func (l *localLimiterGatewayImpl) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

func (l *localLimiterGatewayImpl) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"mode":  "local",
			"rate":  strconv.FormatFloat(float64(l.limiter.Limit()), 'f', -1, 64),
			"burst": strconv.Itoa(l.limiter.Burst()),
		},
	}
}
