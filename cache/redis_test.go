package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

func skipIfNoRedis(t *testing.T) {
	if os.Getenv("REDIS_TEST_ADDR") == "" {
		t.Skip("REDIS_TEST_ADDR not set, skipping Redis tests")
	}
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	skipIfNoRedis(t)

	opts := &Options{
		Backend:    BackendRedis,
		RedisAddr:  os.Getenv("REDIS_TEST_ADDR"),
		DefaultTTL: time.Minute,
	}

	c, err := NewRedisCache(opts)
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "cvrp-test-key", []byte("cvrp-test-value"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	defer c.Delete(ctx, "cvrp-test-key")

	val, err := c.Get(ctx, "cvrp-test-key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(val) != "cvrp-test-value" {
		t.Errorf("Get = %q, want %q", val, "cvrp-test-value")
	}
}

func TestRedisCache_NotFound(t *testing.T) {
	skipIfNoRedis(t)

	c, err := NewRedisCache(&Options{Backend: BackendRedis, RedisAddr: os.Getenv("REDIS_TEST_ADDR")})
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()

	if _, err := c.Get(context.Background(), "cvrp-nonexistent-key"); err != ErrKeyNotFound {
		t.Errorf("Get = %v, want ErrKeyNotFound", err)
	}
}
