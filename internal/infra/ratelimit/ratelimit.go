package ratelimit

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"weather-app/internal/domain/gateway/ratelimit"
	infraredis "weather-app/internal/infra/redis"
	"weather-app/pkg/log"
	"weather-app/pkg/redis"
	"weather-app/pkg/resource"
)

const quotaNamespace = "weather-app::openweather"

// NewLimiterGateway picks the outbound limiter from configuration: a Redis quota shared
// across instances when weather.rate-limit.redis.enabled is set, a local token bucket when
// weather.rate-limit.requests-per-sec is positive, otherwise none. The returned close
// function releases the Redis connection, if any.
func NewLimiterGateway() (ratelimit.LimiterGateway, func(), error) {
	if resource.GetBool("weather.rate-limit.redis.enabled") {
		client, err := infraredis.NewClient()
		if err != nil {
			return nil, nil, err
		}

		perMinute := resource.GetInt("weather.rate-limit.redis.per-minute")
		quota, err := redis.NewQuotaLimiter(client, quotaNamespace, perMinute, time.Minute)
		if err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to create Redis quota limiter: %w", err)
		}

		log.Info("Outbound rate limiter: redis",
			zap.String("addr", client.GetConfig().Addr()),
			zap.Int("per_minute", perMinute),
		)
		return ratelimit.NewRedisLimiterGateway(client, quota), func() { _ = client.Close() }, nil
	}

	if rps := resource.GetFloat64("weather.rate-limit.requests-per-sec"); rps > 0 {
		burst := resource.GetInt("weather.rate-limit.burst")
		gateway, err := ratelimit.NewLocalLimiterGateway(rps, burst)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Outbound rate limiter: local", zap.Float64("requests_per_sec", rps), zap.Int("burst", burst))
		return gateway, func() {}, nil
	}

	return ratelimit.NewDisabledLimiterGateway(), func() {}, nil
}
