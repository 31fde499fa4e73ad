// Package cache memoizes completed solver runs so that repeated benchmark
// sweeps over the same instance and configuration never re-run the
// metaheuristic. It has no dependency on the cvrp package's internals: the
// generic Cache interface stores opaque bytes keyed by string; the
// solve-specific key construction lives in hasher.go and store.go, and the
// (de)serialization in store.go.
package cache

import (
	"context"
	"errors"
	"time"
)

// Backend names accepted by New and the config loader.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// ErrKeyNotFound is returned when a requested key does not exist in the cache.
var ErrKeyNotFound = errors.New("cache: key not found")

// ErrCacheClosed is returned when an operation is attempted on a closed cache.
var ErrCacheClosed = errors.New("cache: cache is closed")

// Cache is a byte-oriented cache backend. Both implementations in this
// package (Memory and Redis) satisfy it identically from the caller's
// perspective.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Stats(ctx context.Context) (*Stats, error)
	Close() error
}

// Stats reports basic hit/miss accounting for a cache instance.
type Stats struct {
	TotalKeys int64
	Hits      int64
	Misses    int64
	HitRate   float64
	Backend   string
}

// Options configures the cache backends New can build.
type Options struct {
	Backend    string
	DefaultTTL time.Duration

	// Memory-specific.
	MaxEntries      int
	CleanupInterval time.Duration

	// Redis-specific.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPoolSize int
}

// DefaultOptions returns an in-memory cache configuration with a 30-minute
// default TTL, matching the lifetime of a single benchmark sweep.
func DefaultOptions() *Options {
	return &Options{
		Backend:         BackendMemory,
		DefaultTTL:      30 * time.Minute,
		MaxEntries:      10_000,
		CleanupInterval: time.Minute,
		RedisAddr:       "localhost:6379",
		RedisPoolSize:   10,
	}
}

// New builds the Cache selected by opts.Backend, defaulting to Memory for an
// empty or unrecognised backend name.
func New(opts *Options) (Cache, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	switch opts.Backend {
	case BackendRedis:
		return NewRedisCache(opts)
	default:
		return NewMemoryCache(opts), nil
	}
}
