package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthStatus is the outcome of a HealthCheck
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// HealthCheck pings Redis and reports pool statistics
func (c *Client) HealthCheck(ctx context.Context) (HealthStatus, map[string]string) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	details := map[string]string{
		"addr":     c.config.Addr(),
		"database": strconv.Itoa(c.config.Database),
	}

	if err := c.Ping(ctx); err != nil {
		details["error"] = err.Error()
		return StatusDown, details
	}

	stats := c.Stats()
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	details["timeouts"] = strconv.FormatUint(uint64(stats.Timeouts), 10)
	return StatusUp, details
}
