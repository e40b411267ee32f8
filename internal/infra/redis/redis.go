package redis

import (
	"fmt"

	pkgredis "weather-app/pkg/redis"
	"weather-app/pkg/resource"
)

// NewClient builds the Redis client of the shared rate limiter from weather.rate-limit.redis.*
func NewClient() (*pkgredis.Client, error) {
	config := pkgredis.NewRedisConfig().
		WithHost(resource.GetString("weather.rate-limit.redis.host")).
		WithPort(resource.GetInt("weather.rate-limit.redis.port")).
		WithPassword(resource.GetString("weather.rate-limit.redis.password")).
		WithDatabase(resource.GetInt("weather.rate-limit.redis.database"))

	client, err := pkgredis.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis client: %w", err)
	}
	return client, nil
}
