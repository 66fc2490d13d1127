package service

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "github.com/flyaway-travel/flyaway-backend/errors"
	"github.com/flyaway-travel/flyaway-backend/internal/store"
	"github.com/flyaway-travel/flyaway-backend/logger"
	"github.com/flyaway-travel/flyaway-backend/models/trip/itinerary"
	"github.com/flyaway-travel/flyaway-backend/types"
	"github.com/google/uuid"
)

// TripManagementService handles trip aggregate operations: create (with the
// initial day sequence), hydrated reads, header updates including date-range
// edits, and deletion.
type TripManagementService struct {
	trips      store.TripStore
	days       store.DayStore
	activities store.ActivityStore
	tx         store.TxRunner
	cache      TripCache
}

// NewTripManagementService creates a new trip management service.
func NewTripManagementService(
	trips store.TripStore,
	days store.DayStore,
	activities store.ActivityStore,
	tx store.TxRunner,
	cache TripCache,
) *TripManagementService {
	if cache == nil {
		cache = NopTripCache{}
	}
	return &TripManagementService{
		trips:      trips,
		days:       days,
		activities: activities,
		tx:         tx,
		cache:      cache,
	}
}

// CreateTrip validates and persists a new trip, seeding one day per calendar
// date in the trip's range (numbered 1..N), and returns the created
// aggregate.
func (s *TripManagementService) CreateTrip(ctx context.Context, ownerID string, trip *types.Trip) (*types.Trip, error) {
	if strings.TrimSpace(trip.Name) == "" {
		return nil, apperrors.ValidationFailed("invalid_trip", "trip name must not be blank")
	}
	if strings.TrimSpace(trip.Destination) == "" {
		return nil, apperrors.ValidationFailed("invalid_trip", "trip destination must not be blank")
	}
	start, end := types.DateOnly(trip.StartDate), types.DateOnly(trip.EndDate)
	if end.Before(start) {
		return nil, apperrors.ValidationFailed("invalid_dates", "trip end date cannot be before start date")
	}

	if trip.ID == "" {
		trip.ID = uuid.NewString()
	}
	trip.OwnerID = ownerID
	trip.StartDate = start
	trip.EndDate = end

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.trips.Upsert(ctx, trip); err != nil {
			return apperrors.NewDatabaseError(err)
		}

		seeded := make([]types.Day, 0, trip.DurationDays())
		for offset := 0; offset < trip.DurationDays(); offset++ {
			day := types.Day{
				ID:        uuid.NewString(),
				TripID:    trip.ID,
				Date:      start.AddDate(0, 0, offset),
				DayNumber: offset + 1,
			}
			if err := s.days.Upsert(ctx, &day); err != nil {
				return apperrors.NewDatabaseError(err)
			}
			seeded = append(seeded, day)
		}
		trip.Days = seeded
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.GetLogger().Infow("Created trip", "tripId", trip.ID, "days", len(trip.Days))
	return trip, nil
}

// GetTrip returns the fully hydrated aggregate (trip, days in day-number
// order, each day's activities), checking ownership first.
func (s *TripManagementService) GetTrip(ctx context.Context, tripID, userID string) (*types.Trip, error) {
	if cached, err := s.cache.Get(ctx, tripID); err != nil {
		logger.GetLogger().Warnw("Trip cache read failed", "tripId", tripID, "error", err)
	} else if cached != nil {
		if cached.OwnerID != userID {
			return nil, apperrors.TripAccessDenied(userID, tripID)
		}
		return cached, nil
	}

	trip, err := s.getOwnedTrip(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}

	days, err := s.days.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	hydrated, err := attachActivities(ctx, s.activities, days)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	trip.Days = hydrated

	if err := s.cache.Set(ctx, trip); err != nil {
		logger.GetLogger().Warnw("Trip cache write failed", "tripId", tripID, "error", err)
	}
	return trip, nil
}

// ListUserTrips lists the trip headers owned by a user, without days.
func (s *TripManagementService) ListUserTrips(ctx context.Context, userID string) ([]*types.Trip, error) {
	trips, err := s.trips.ListByOwner(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return trips, nil
}

// UpdateTrip applies a partial header update. When the date range changes,
// days falling outside the new range are removed (their activities cascade
// with them), days for newly covered dates are created, and the survivors
// are renumbered. Returns the hydrated aggregate.
func (s *TripManagementService) UpdateTrip(ctx context.Context, tripID, userID string, update types.TripUpdate) (*types.Trip, error) {
	var result *types.Trip
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		trip, err := s.getOwnedTrip(ctx, tripID, userID)
		if err != nil {
			return err
		}

		oldStart, oldEnd := trip.StartDate, trip.EndDate
		if update.Name != nil {
			if strings.TrimSpace(*update.Name) == "" {
				return apperrors.ValidationFailed("invalid_trip", "trip name must not be blank")
			}
			trip.Name = *update.Name
		}
		if update.Destination != nil {
			trip.Destination = *update.Destination
		}
		if update.StartDate != nil {
			trip.StartDate = types.DateOnly(*update.StartDate)
		}
		if update.EndDate != nil {
			trip.EndDate = types.DateOnly(*update.EndDate)
		}
		if update.ImageURLs != nil {
			trip.ImageURLs = update.ImageURLs
		}
		if trip.EndDate.Before(trip.StartDate) {
			return apperrors.ValidationFailed("invalid_dates", "trip end date cannot be before start date")
		}

		if !trip.StartDate.Equal(oldStart) || !trip.EndDate.Equal(oldEnd) {
			if err := s.reconcileDays(ctx, trip); err != nil {
				return err
			}
		} else {
			days, err := s.days.ListByTrip(ctx, tripID)
			if err != nil {
				return apperrors.NewDatabaseError(err)
			}
			trip.Days, err = attachActivities(ctx, s.activities, days)
			if err != nil {
				return apperrors.NewDatabaseError(err)
			}
		}

		if err := s.trips.Upsert(ctx, trip); err != nil {
			return apperrors.NewDatabaseError(err)
		}
		result = trip
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, tripID); err != nil {
		logger.GetLogger().Warnw("Trip cache invalidation failed", "tripId", tripID, "error", err)
	}
	return result, nil
}

// DeleteTrip removes a trip and, through cascade, its days and activities.
func (s *TripManagementService) DeleteTrip(ctx context.Context, tripID, userID string) error {
	if _, err := s.getOwnedTrip(ctx, tripID, userID); err != nil {
		return err
	}
	if err := s.trips.Delete(ctx, tripID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.TripNotFound(tripID)
		}
		return apperrors.NewDatabaseError(err)
	}
	if err := s.cache.Invalidate(ctx, tripID); err != nil {
		logger.GetLogger().Warnw("Trip cache invalidation failed", "tripId", tripID, "error", err)
	}
	return nil
}

// reconcileDays brings the trip's day set in line with its (possibly just
// changed) date range: drops days outside [StartDate, EndDate], creates days
// for uncovered dates, renumbers, and attaches activities for the survivors.
func (s *TripManagementService) reconcileDays(ctx context.Context, trip *types.Trip) error {
	days, err := s.days.ListByTrip(ctx, trip.ID)
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}

	covered := make(map[time.Time]bool, len(days))
	kept := make([]types.Day, 0, len(days))
	for _, day := range days {
		if !trip.ContainsDate(day.Date) {
			if err := s.days.Delete(ctx, day.ID); err != nil {
				return apperrors.NewDatabaseError(err)
			}
			continue
		}
		covered[types.DateOnly(day.Date)] = true
		kept = append(kept, day)
	}

	for date := trip.StartDate; !date.After(trip.EndDate); date = date.AddDate(0, 0, 1) {
		if covered[date] {
			continue
		}
		day := types.Day{ID: uuid.NewString(), TripID: trip.ID, Date: date}
		if err := s.days.Upsert(ctx, &day); err != nil {
			return apperrors.NewDatabaseError(err)
		}
		kept = append(kept, day)
	}

	renumbered := itinerary.Renumber(kept)
	for _, day := range itinerary.ChangedDays(days, renumbered) {
		if err := s.days.Upsert(ctx, &day); err != nil {
			return apperrors.NewDatabaseError(err)
		}
	}

	trip.Days, err = attachActivities(ctx, s.activities, renumbered)
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// getOwnedTrip fetches a trip header and verifies ownership.
func (s *TripManagementService) getOwnedTrip(ctx context.Context, tripID, userID string) (*types.Trip, error) {
	trip, err := s.trips.Get(ctx, tripID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.TripNotFound(tripID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	if trip.OwnerID != userID {
		return nil, apperrors.TripAccessDenied(userID, tripID)
	}
	return trip, nil
}
