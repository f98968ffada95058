package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache implements Cache over a shared Redis instance, so multiple
// processes analyzing the same graph can reuse each other's results.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache connects to addr and returns a Cache backed by it. Keys
// are namespaced under prefix to share a Redis instance across unrelated
// callers.
func NewRedisCache(addr, prefix string) (Cache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisCache{client: client, prefix: prefix}, nil
}

func (c *RedisCache) key(key string) string { return c.prefix + key }

// Get implements Cache.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := RetryWithBackoff(ctx, func() error {
		var getErr error
		data, getErr = c.client.Get(ctx, c.key(key)).Bytes()
		if getErr == redis.Nil {
			return nil
		}
		if getErr != nil {
			return Retryable(getErr)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return nil, false, nil
	}
	return data, true, nil
}

// Set implements Cache.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return RetryWithBackoff(ctx, func() error {
		if err := c.client.Set(ctx, c.key(key), data, ttl).Err(); err != nil {
			return Retryable(err)
		}
		return nil
	})
}

// Delete implements Cache.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return RetryWithBackoff(ctx, func() error {
		if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
			return Retryable(err)
		}
		return nil
	})
}

// Close implements Cache.
func (c *RedisCache) Close() error { return c.client.Close() }

// Ensure RedisCache implements Cache.
var _ Cache = (*RedisCache)(nil)
