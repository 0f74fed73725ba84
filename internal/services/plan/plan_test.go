package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/user-plans/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) GetPlanByID(ctx context.Context, id int) (*models.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plan), args.Error(1)
}
func (m *RepoMock) ListPlans(ctx context.Context) ([]*models.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Plan), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}
func (m *CacheMock) Invalidate(key string) error {
	return m.Called(key).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestPlanService_List(t *testing.T) {
	plans := []*models.Plan{
		{ID: 1, Name: "Free", Price: 0},
		{ID: 2, Name: "Pro", Price: 19.99},
	}

	t.Run("cache miss reads storage and fills cache", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		cache.On("Get", "plans:all", mock.Anything).Return(false, nil).Once()
		repo.On("ListPlans", mock.Anything).Return(plans, nil).Once()
		cache.On("Set", "plans:all", mock.Anything, time.Hour).Return(nil).Once()

		svc := NewPlanService(repo, cache, newNoopLogger())
		got, err := svc.List(context.Background())

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Free", got[0].Name)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("cache failure propagates", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		cache.On("Get", "plans:all", mock.Anything).Return(false, assert.AnError).Once()

		svc := NewPlanService(repo, cache, newNoopLogger())
		_, err := svc.List(context.Background())

		require.Error(t, err)
		repo.AssertNotCalled(t, "ListPlans", mock.Anything)
	})
}

func TestPlanService_Get(t *testing.T) {
	repo := new(RepoMock)
	repo.On("GetPlanByID", mock.Anything, 2).Return(&models.Plan{ID: 2, Name: "Pro"}, nil).Once()
	repo.On("GetPlanByID", mock.Anything, 99).Return(nil, models.ErrPlanNotFound).Once()

	svc := NewPlanService(repo, new(CacheMock), newNoopLogger())

	got, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Pro", got.Name)

	_, err = svc.Get(context.Background(), 99)
	require.ErrorIs(t, err, models.ErrPlanNotFound)

	repo.AssertExpectations(t)
}
