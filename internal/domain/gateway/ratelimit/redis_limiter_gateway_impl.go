package ratelimit

import (
	"context"
	"strconv"

	"weather-app/internal/domain/model"
	"weather-app/pkg/redis"
)

type redisLimiterGatewayImpl struct {
	client  *redis.Client
	limiter *redis.QuotaLimiter
}

// NewRedisLimiterGateway shares the per-window quota with every instance using the same Redis database
func NewRedisLimiterGateway(client *redis.Client, limiter *redis.QuotaLimiter) LimiterGateway {
	return &redisLimiterGatewayImpl{client: client, limiter: limiter}
}

func (r *redisLimiterGatewayImpl) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

func (r *redisLimiterGatewayImpl) Health(ctx context.Context) model.ComponentHealthStatus {
	status, details := r.client.HealthCheck(ctx)
	details["mode"] = "redis"
	details["limit"] = strconv.FormatInt(r.limiter.Limit(), 10)

	switch status {
	case redis.StatusUp:
		return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
	case redis.StatusDown:
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	default:
		return model.ComponentHealthStatus{Status: model.StatusUnknown, Details: details}
	}
}
