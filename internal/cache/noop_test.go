package cache

import (
	"context"
	"testing"
	"time"

	"resume-fit/internal/analysis"
)

// TestNoOpCache verifies that NoOpCache implements the Cache interface correctly
func TestNoOpCache(t *testing.T) {
	var cache Cache = NewNoOpCache()
	ctx := context.Background()

	// Test GetAnalysis - should always return nil (cache miss)
	result, err := cache.GetAnalysis(ctx, "test-key")
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if result != nil {
		t.Errorf("Expected nil result (cache miss), got %v", result)
	}

	// Test SetAnalysis - should succeed silently
	err = cache.SetAnalysis(ctx, "test-key", &analysis.FitAnalysis{
		OverallScore: 72,
		FitLevel:     analysis.FitGood,
		Summary:      "Solid backend match.",
	}, 1*time.Hour)
	if err != nil {
		t.Errorf("Expected no error on SetAnalysis, got %v", err)
	}

	// Verify it still returns nil (nothing was actually cached)
	result, err = cache.GetAnalysis(ctx, "test-key")
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if result != nil {
		t.Errorf("Expected nil result (no-op cache doesn't store), got %v", result)
	}

	// Test Close - should succeed silently
	err = cache.Close()
	if err != nil {
		t.Errorf("Expected no error on Close, got %v", err)
	}
}
