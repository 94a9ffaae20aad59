package cache

import (
	"context"
	"time"

	"resume-fit/internal/analysis"
)

// NoOpCache is a cache implementation that does nothing.
// It is the default, and the fallback when Redis is unavailable: all
// operations succeed but nothing is kept (always a cache miss).
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache instance
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// GetAnalysis always returns nil (cache miss)
func (c *NoOpCache) GetAnalysis(ctx context.Context, key string) (*analysis.FitAnalysis, error) {
	return nil, nil
}

// SetAnalysis does nothing and always succeeds
func (c *NoOpCache) SetAnalysis(ctx context.Context, key string, result *analysis.FitAnalysis, ttl time.Duration) error {
	return nil
}

// Close does nothing and always succeeds
func (c *NoOpCache) Close() error {
	return nil
}
