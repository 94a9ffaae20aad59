package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"resume-fit/internal/analysis"
)

// Cache stores normalized analyses so identical requests skip the model.
type Cache interface {
	// GetAnalysis retrieves a cached analysis by key
	// Returns nil if not found
	GetAnalysis(ctx context.Context, key string) (*analysis.FitAnalysis, error)

	// SetAnalysis stores an analysis with TTL
	SetAnalysis(ctx context.Context, key string, result *analysis.FitAnalysis, ttl time.Duration) error

	// Close closes the cache connection
	Close() error
}

// Key derives a cache key from the model and both inputs. Inputs are hashed
// as given, so whitespace differences produce different keys.
func Key(model, resume, jobDescription string) string {
	h := sha256.New()
	for _, part := range []string{model, resume, jobDescription} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
