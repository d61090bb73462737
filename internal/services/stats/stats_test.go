package stats

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CountUsers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) CountEvents(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) CountRegistrations(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(ctx context.Context, key string, result any) (bool, error) {
	args := m.Called(ctx, key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestStatsService_Collect(t *testing.T) {
	t.Run("cache miss counts and caches", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		cache.On("Get", mock.Anything, "stats:counters", mock.Anything).Return(false, nil).Once()
		repo.On("CountUsers", mock.Anything).Return(10, nil).Once()
		repo.On("CountEvents", mock.Anything).Return(4, nil).Once()
		repo.On("CountRegistrations", mock.Anything).Return(25, nil).Once()
		cache.On("Set", mock.Anything, "stats:counters", mock.Anything, 30*time.Second).Return(nil).Once()

		service := NewStatsService(repo, cache, newNoopLogger())
		counters, err := service.Collect(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 10, counters.TotalUsers)
		assert.Equal(t, 4, counters.TotalEvents)
		assert.Equal(t, 25, counters.TotalRegistrations)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("cache hit skips storage", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		cache.On("Get", mock.Anything, "stats:counters", mock.Anything).Return(true, nil).Once()

		service := NewStatsService(repo, cache, newNoopLogger())
		_, err := service.Collect(context.Background())
		require.NoError(t, err)
		repo.AssertNotCalled(t, "CountUsers")
	})
}
