package ratelimit

import (
	"context"
	"testing"
	"time"

	"weather-app/internal/domain/model"
	"weather-app/pkg/redis"
)

func TestDisabledLimiterGateway(t *testing.T) {
	gw := NewDisabledLimiterGateway()

	if err := gw.Wait(context.Background()); err != nil {
		t.Errorf("Wait() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := gw.Wait(ctx); err == nil {
		t.Error("expected error for cancelled context")
	}

	if got := gw.Health(context.Background()).Status; got != model.StatusUp {
		t.Errorf("status = %s, want UP", got)
	}
}

func TestLocalLimiterGateway(t *testing.T) {
	if _, err := NewLocalLimiterGateway(0, 1); err == nil {
		t.Error("expected error for zero rate")
	}

	gw, err := NewLocalLimiterGateway(0.001, 1)
	if err != nil {
		t.Fatalf("NewLocalLimiterGateway: %v", err)
	}

	if err := gw.Wait(context.Background()); err != nil {
		t.Fatalf("first Wait() error = %v", err)
	}

	// the next token is ~1000s away, so the deadline must win
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := gw.Wait(ctx); err == nil {
		t.Error("expected second Wait() to fail within deadline")
	}

	health := gw.Health(context.Background())
	if health.Status != model.StatusUp || health.Details["mode"] != "local" || health.Details["burst"] != "1" {
		t.Errorf("unexpected health %+v", health)
	}
}

func TestRedisLimiterGatewayReportsDownWhenUnreachable(t *testing.T) {
	client, err := redis.NewClient(redis.NewRedisConfig().WithHost("127.0.0.1").WithPort(1))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	quota, err := redis.NewQuotaLimiter(client, "weather-app", 5, time.Minute)
	if err != nil {
		t.Fatalf("NewQuotaLimiter: %v", err)
	}
	gw := NewRedisLimiterGateway(client, quota)

	health := gw.Health(context.Background())
	if health.Status != model.StatusDown {
		t.Errorf("status = %s, want DOWN", health.Status)
	}
	if health.Details["mode"] != "redis" || health.Details["limit"] != "5" {
		t.Errorf("unexpected details %+v", health.Details)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := gw.Wait(ctx); err == nil {
		t.Error("expected Wait() error when redis is unreachable")
	}
}
