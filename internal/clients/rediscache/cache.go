package rediscache

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/neowatch-backend/internal/logger"
)

// Cache is a byte cache for upstream responses. Implementations never
// fail the request path: a broken cache reports a miss and the caller
// falls through to the origin.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration)
	Close() error
}

type redisCache struct {
	log *logger.Logger
	rdb *goredis.Client
}

// New connects to Redis using REDIS_ADDR/REDIS_PASSWORD. A failed ping is
// an error here so startup can decide whether to run without a cache.
func New(log *logger.Logger) (Cache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    os.Getenv("REDIS_PASSWORD"),
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &redisCache{
		log: log.With("service", "RedisCache"),
		rdb: rdb,
	}, nil
}

func (rc *redisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := rc.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != goredis.Nil {
			rc.log.Warn("Cache read failed", "key", key, "error", err.Error())
		}
		return nil, false
	}
	return val, true
}

func (rc *redisCache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) {
	if err := rc.rdb.Set(ctx, key, val, ttl).Err(); err != nil {
		rc.log.Warn("Cache write failed", "key", key, "error", err.Error())
	}
}

func (rc *redisCache) Close() error {
	return rc.rdb.Close()
}

// Noop is the cache used when Redis is unavailable at startup; every read
// misses and every write is dropped.
type Noop struct{}

func (Noop) Get(ctx context.Context, key string) ([]byte, bool) { return nil, false }

func (Noop) Set(ctx context.Context, key string, val []byte, d time.Duration) {}

func (Noop) Close() error { return nil }
