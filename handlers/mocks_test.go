package handlers_test

import (
	"context"

	"github.com/flyaway-travel/flyaway-backend/types"
	"github.com/stretchr/testify/mock"
)

// MockTripService is a mock implementation of handlers.TripService
type MockTripService struct {
	mock.Mock
}

func (m *MockTripService) CreateTrip(ctx context.Context, ownerID string, trip *types.Trip) (*types.Trip, error) {
	args := m.Called(ctx, ownerID, trip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Trip), args.Error(1)
}

func (m *MockTripService) GetTrip(ctx context.Context, tripID, userID string) (*types.Trip, error) {
	args := m.Called(ctx, tripID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Trip), args.Error(1)
}

func (m *MockTripService) ListUserTrips(ctx context.Context, userID string) ([]*types.Trip, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Trip), args.Error(1)
}

func (m *MockTripService) UpdateTrip(ctx context.Context, tripID, userID string, update types.TripUpdate) (*types.Trip, error) {
	args := m.Called(ctx, tripID, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Trip), args.Error(1)
}

func (m *MockTripService) DeleteTrip(ctx context.Context, tripID, userID string) error {
	args := m.Called(ctx, tripID, userID)
	return args.Error(0)
}

// MockItineraryService is a mock implementation of handlers.ItineraryService
type MockItineraryService struct {
	mock.Mock
}

func (m *MockItineraryService) SaveDay(ctx context.Context, userID string, day types.Day) (*types.Trip, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Trip), args.Error(1)
}

func (m *MockItineraryService) DeleteDay(ctx context.Context, userID, tripID, dayID string) (*types.Trip, error) {
	args := m.Called(ctx, userID, tripID, dayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Trip), args.Error(1)
}

func (m *MockItineraryService) SaveActivity(ctx context.Context, userID string, activity types.Activity) (*types.Day, error) {
	args := m.Called(ctx, userID, activity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Day), args.Error(1)
}

func (m *MockItineraryService) DeleteActivity(ctx context.Context, userID, dayID, activityID string) (*types.Day, error) {
	args := m.Called(ctx, userID, dayID, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Day), args.Error(1)
}
