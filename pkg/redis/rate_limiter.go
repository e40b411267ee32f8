package redis

import (
	"context"
	"fmt"
	"time"
)

// QuotaLimiter enforces a request quota per fixed window that is shared by every
// process pointing at the same Redis database.
type QuotaLimiter struct {
	client    *Client
	namespace string
	limit     int64
	window    time.Duration
	now       func() time.Time
}

// NewQuotaLimiter allows at most limit acquisitions per window for the given namespace.
func NewQuotaLimiter(client *Client, namespace string, limit int, window time.Duration) (*QuotaLimiter, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("invalid limit: %d, must be positive", limit)
	}
	if window <= 0 {
		return nil, fmt.Errorf("invalid window: %v, must be positive", window)
	}
	return &QuotaLimiter{
		client:    client,
		namespace: namespace,
		limit:     int64(limit),
		window:    window,
		now:       time.Now,
	}, nil
}

// buildKey returns the counter key for the window containing t, Namespace::quota::<window start>
func (q *QuotaLimiter) buildKey(t time.Time) string {
	return fmt.Sprintf("%s::quota::%d", q.namespace, t.Truncate(q.window).Unix())
}

// untilNextWindow is the time left in the window containing t
func (q *QuotaLimiter) untilNextWindow(t time.Time) time.Duration {
	return t.Truncate(q.window).Add(q.window).Sub(t)
}

// Wait blocks until a slot in the current or a later window is acquired, or ctx is done.
func (q *QuotaLimiter) Wait(ctx context.Context) error {
	for {
		now := q.now()
		count, err := q.client.IncrWithExpire(ctx, q.buildKey(now), 2*q.window)
		if err != nil {
			return fmt.Errorf("failed to acquire quota slot: %w", err)
		}
		if count <= q.limit {
			return nil
		}

		timer := time.NewTimer(q.untilNextWindow(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Limit returns the number of acquisitions allowed per window.
func (q *QuotaLimiter) Limit() int64 {
	return q.limit
}
