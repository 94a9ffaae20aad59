package cache

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"resume-fit/internal/analysis"
)

// MockCache is a mock implementation of the Cache interface for testing
type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetAnalysis(ctx context.Context, key string) (*analysis.FitAnalysis, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analysis.FitAnalysis), args.Error(1)
}

func (m *MockCache) SetAnalysis(ctx context.Context, key string, result *analysis.FitAnalysis, ttl time.Duration) error {
	args := m.Called(ctx, key, result, ttl)
	return args.Error(0)
}

func (m *MockCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
