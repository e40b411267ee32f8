package redis

import (
	"context"
	"strconv"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{"defaults", NewRedisConfig(), false},
		{"empty host", NewRedisConfig().WithHost(""), true},
		{"port out of range", NewRedisConfig().WithPort(70000), true},
		{"database out of range", NewRedisConfig().WithDatabase(16), true},
		{"custom", NewRedisConfig().WithHost("redis").WithPort(6380).WithPassword("pw").WithDatabase(2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	if _, err := NewClient(NewRedisConfig().WithPort(0)); err == nil {
		t.Error("expected error for port 0")
	}
}

func TestNewQuotaLimiterValidation(t *testing.T) {
	client, err := NewClient(nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	if _, err := NewQuotaLimiter(nil, "ns", 1, time.Minute); err == nil {
		t.Error("expected error without client")
	}
	if _, err := NewQuotaLimiter(client, "ns", 0, time.Minute); err == nil {
		t.Error("expected error for zero limit")
	}
	if _, err := NewQuotaLimiter(client, "ns", 1, 0); err == nil {
		t.Error("expected error for zero window")
	}
}

func TestQuotaLimiterWindowMath(t *testing.T) {
	client, err := NewClient(nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	q, err := NewQuotaLimiter(client, "weather-app", 60, time.Minute)
	if err != nil {
		t.Fatalf("NewQuotaLimiter: %v", err)
	}

	at := time.Date(2024, 3, 1, 10, 15, 42, 0, time.UTC)
	windowStart := time.Date(2024, 3, 1, 10, 15, 0, 0, time.UTC)

	if got, want := q.buildKey(at), "weather-app::quota::"+strconv.FormatInt(windowStart.Unix(), 10); got != want {
		t.Errorf("buildKey = %q, want %q", got, want)
	}
	if got := q.untilNextWindow(at); got != 18*time.Second {
		t.Errorf("untilNextWindow = %v, want 18s", got)
	}
	if q.Limit() != 60 {
		t.Errorf("Limit = %d", q.Limit())
	}
}

func TestQuotaLimiterReturnsErrorWhenRedisUnreachable(t *testing.T) {
	client, err := NewClient(NewRedisConfig().WithHost("127.0.0.1").WithPort(1))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	q, _ := NewQuotaLimiter(client, "ns", 1, time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := q.Wait(ctx); err == nil {
		t.Error("expected error when redis is unreachable")
	}

	status, details := client.HealthCheck(context.Background())
	if status != StatusDown {
		t.Errorf("status = %s, want DOWN", status)
	}
	if details["error"] == "" {
		t.Error("expected error detail")
	}
}
