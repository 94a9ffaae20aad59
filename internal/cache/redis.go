package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"resume-fit/internal/analysis"
	"resume-fit/internal/retry"
)

const (
	// Key prefix for cached analyses
	cacheKeyPrefix = "analysis:"

	connectAttempts = 3
	connectBackoff  = 200 * time.Millisecond
	pingTimeout     = 5 * time.Second
)

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache client. The server is pinged with
// exponential backoff before the cache is handed out.
func NewRedisCache(ctx context.Context, addr, password string) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	err := retry.Do(ctx, connectAttempts, connectBackoff, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return client.Ping(pingCtx).Err()
	})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisCache{
		client: client,
	}, nil
}

// GetAnalysis retrieves a cached analysis by key
func (c *RedisCache) GetAnalysis(ctx context.Context, key string) (*analysis.FitAnalysis, error) {
	data, err := c.client.Get(ctx, cacheKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		return nil, err
	}

	var result analysis.FitAnalysis
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SetAnalysis stores an analysis with TTL
func (c *RedisCache) SetAnalysis(ctx context.Context, key string, result *analysis.FitAnalysis, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKeyPrefix+key, data, ttl).Err()
}

// Close closes the cache connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
