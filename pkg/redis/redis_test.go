package redis

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Host != "localhost" {
		t.Errorf("Expected host 'localhost', got '%s'", cfg.Host)
	}
	if cfg.Port != 6379 {
		t.Errorf("Expected port 6379, got %d", cfg.Port)
	}
	if cfg.PoolSize != 20 {
		t.Errorf("Expected pool size 20, got %d", cfg.PoolSize)
	}
	if cfg.MinIdleConns != 2 {
		t.Errorf("Expected min idle conns 2, got %d", cfg.MinIdleConns)
	}
}

func TestConfig_Addr(t *testing.T) {
	cfg := &Config{Host: "redis.internal", Port: 6380}

	if cfg.Addr() != "redis.internal:6380" {
		t.Errorf("Expected addr 'redis.internal:6380', got '%s'", cfg.Addr())
	}
}

func TestNewClient_InvalidConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cfg := DefaultConfig()
	cfg.Host = "invalid-host-that-does-not-exist"
	cfg.MaxRetries = 0
	cfg.DialTimeout = 500 * time.Millisecond
	cfg.RetryInterval = 10 * time.Millisecond

	if _, err := NewClient(ctx, cfg); err == nil {
		t.Error("Expected connection error for invalid host")
	}
}

func TestNewClient_Integration(t *testing.T) {
	if os.Getenv("TEST_REDIS_HOST") == "" {
		t.Skip("TEST_REDIS_HOST not set, skipping integration test")
	}

	ctx := context.Background()
	cfg := DefaultConfig()
	cfg.Host = os.Getenv("TEST_REDIS_HOST")
	cfg.Password = os.Getenv("TEST_REDIS_PASSWORD")

	client, err := NewClient(ctx, cfg)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	if err := client.Ping(ctx); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
	if err := client.HealthCheck(ctx); err != nil {
		t.Errorf("HealthCheck failed: %v", err)
	}
}
