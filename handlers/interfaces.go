package handlers

import (
	"context"

	"github.com/flyaway-travel/flyaway-backend/types"
)

// TripService is the trip aggregate surface consumed by the HTTP handlers.
type TripService interface {
	CreateTrip(ctx context.Context, ownerID string, trip *types.Trip) (*types.Trip, error)
	GetTrip(ctx context.Context, tripID, userID string) (*types.Trip, error)
	ListUserTrips(ctx context.Context, userID string) ([]*types.Trip, error)
	UpdateTrip(ctx context.Context, tripID, userID string, update types.TripUpdate) (*types.Trip, error)
	DeleteTrip(ctx context.Context, tripID, userID string) error
}

// ItineraryService is the day/activity mutation surface consumed by the HTTP
// handlers. Day mutations return the refreshed trip aggregate; activity
// mutations return the refreshed day.
type ItineraryService interface {
	SaveDay(ctx context.Context, userID string, day types.Day) (*types.Trip, error)
	DeleteDay(ctx context.Context, userID, tripID, dayID string) (*types.Trip, error)
	SaveActivity(ctx context.Context, userID string, activity types.Activity) (*types.Day, error)
	DeleteActivity(ctx context.Context, userID, dayID, activityID string) (*types.Day, error)
}
