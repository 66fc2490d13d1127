package service_test

import (
	"context"

	"github.com/flyaway-travel/flyaway-backend/internal/store"
	"github.com/flyaway-travel/flyaway-backend/types"
	"github.com/stretchr/testify/mock"
)

func errNotFoundStore() error { return store.ErrNotFound }

// MockTripStore is a mock implementation of store.TripStore
type MockTripStore struct {
	mock.Mock
}

func (m *MockTripStore) Get(ctx context.Context, tripID string) (*types.Trip, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Trip), args.Error(1)
}

func (m *MockTripStore) Upsert(ctx context.Context, trip *types.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripStore) Delete(ctx context.Context, tripID string) error {
	args := m.Called(ctx, tripID)
	return args.Error(0)
}

func (m *MockTripStore) ListByOwner(ctx context.Context, ownerID string) ([]*types.Trip, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Trip), args.Error(1)
}

// MockDayStore is a mock implementation of store.DayStore
type MockDayStore struct {
	mock.Mock
}

func (m *MockDayStore) ListByTrip(ctx context.Context, tripID string) ([]types.Day, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Day), args.Error(1)
}

func (m *MockDayStore) Get(ctx context.Context, dayID string) (*types.Day, error) {
	args := m.Called(ctx, dayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Day), args.Error(1)
}

func (m *MockDayStore) Upsert(ctx context.Context, day *types.Day) error {
	args := m.Called(ctx, day)
	return args.Error(0)
}

func (m *MockDayStore) Delete(ctx context.Context, dayID string) error {
	args := m.Called(ctx, dayID)
	return args.Error(0)
}

// MockActivityStore is a mock implementation of store.ActivityStore
type MockActivityStore struct {
	mock.Mock
}

func (m *MockActivityStore) ListByDay(ctx context.Context, dayID string) ([]types.Activity, error) {
	args := m.Called(ctx, dayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Activity), args.Error(1)
}

func (m *MockActivityStore) Upsert(ctx context.Context, activity *types.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityStore) Delete(ctx context.Context, activityID string) error {
	args := m.Called(ctx, activityID)
	return args.Error(0)
}

// MockTripCache is a mock implementation of service.TripCache
type MockTripCache struct {
	mock.Mock
}

func (m *MockTripCache) Get(ctx context.Context, tripID string) (*types.Trip, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Trip), args.Error(1)
}

func (m *MockTripCache) Set(ctx context.Context, trip *types.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripCache) Invalidate(ctx context.Context, tripID string) error {
	args := m.Called(ctx, tripID)
	return args.Error(0)
}

// stubTxRunner runs fn directly and records whether the callback failed,
// which is the signal the real runner uses to roll back.
type stubTxRunner struct {
	rolledBack bool
}

func (s *stubTxRunner) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if err != nil {
		s.rolledBack = true
	}
	return err
}
