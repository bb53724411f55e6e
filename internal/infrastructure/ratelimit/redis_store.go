package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "bella:ratelimit:"

// RedisStore is a fixed-window counter shared by every API replica.
type RedisStore struct {
	client *redis.Client
	max    int
	window time.Duration
}

// NewRedisStore connects to the Redis server at url.
func NewRedisStore(url string, max int, window time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return &RedisStore{client: redis.NewClient(opts), max: max, window: window}, nil
}

// Ping checks connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Take(ctx context.Context, key string) (Result, error) {
	redisKey := redisKeyPrefix + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to increment rate counter: %w", err)
	}
	if count == 1 {
		if err := s.client.PExpire(ctx, redisKey, s.window).Err(); err != nil {
			return Result{}, fmt.Errorf("failed to set rate window: %w", err)
		}
	}

	if count <= int64(s.max) {
		return Result{Allowed: true, Limit: s.max, Remaining: s.max - int(count)}, nil
	}

	ttl, err := s.client.PTTL(ctx, redisKey).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read rate window: %w", err)
	}
	if ttl < 0 {
		// The key lost its expiry; start a fresh window.
		_ = s.client.PExpire(ctx, redisKey, s.window).Err()
		ttl = s.window
	}
	return Result{Allowed: false, Limit: s.max, RetryAfter: ttl}, nil
}

// Close releases the connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
