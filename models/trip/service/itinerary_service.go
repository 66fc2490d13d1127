package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/flyaway-travel/flyaway-backend/errors"
	"github.com/flyaway-travel/flyaway-backend/internal/store"
	"github.com/flyaway-travel/flyaway-backend/logger"
	"github.com/flyaway-travel/flyaway-backend/models/trip/itinerary"
	"github.com/flyaway-travel/flyaway-backend/types"
	"github.com/google/uuid"
)

// ItineraryService keeps a trip's day and activity schedule consistent
// through mutations: every day mutation is followed by a renumbering pass,
// every activity time change is screened for overlaps, and each operation's
// writes happen in one transaction so a failure leaves prior state untouched.
type ItineraryService struct {
	trips      store.TripStore
	days       store.DayStore
	activities store.ActivityStore
	tx         store.TxRunner
	cache      TripCache
}

// NewItineraryService creates a new itinerary service.
func NewItineraryService(
	trips store.TripStore,
	days store.DayStore,
	activities store.ActivityStore,
	tx store.TxRunner,
	cache TripCache,
) *ItineraryService {
	if cache == nil {
		cache = NopTripCache{}
	}
	return &ItineraryService{
		trips:      trips,
		days:       days,
		activities: activities,
		tx:         tx,
		cache:      cache,
	}
}

// SaveDay inserts or replaces a day in the trip, renumbers the full day set
// by date, and returns the trip aggregate hydrated with the renumbered days
// and their activities. The day's date must fall within the trip's range.
func (s *ItineraryService) SaveDay(ctx context.Context, userID string, day types.Day) (*types.Trip, error) {
	var result *types.Trip
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		trip, err := s.trips.Get(ctx, day.TripID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return apperrors.TripNotFound(day.TripID)
			}
			return apperrors.NewDatabaseError(err)
		}
		// Day mutations by a non-owner report not-found rather than
		// leaking the trip's existence.
		if trip.OwnerID != userID {
			return apperrors.TripNotFound(day.TripID)
		}

		if !trip.ContainsDate(day.Date) {
			return apperrors.ValidationFailed("invalid_day_date",
				fmt.Sprintf("day date %s is outside the trip range", types.DateOnly(day.Date).Format("2006-01-02")))
		}

		if day.ID == "" {
			day.ID = uuid.NewString()
		}
		day.Date = types.DateOnly(day.Date)
		if err := s.days.Upsert(ctx, &day); err != nil {
			return apperrors.NewDatabaseError(err)
		}

		updated, err := s.renumberAndHydrate(ctx, trip)
		if err != nil {
			return err
		}
		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, day.TripID)
	return result, nil
}

// DeleteDay removes a day (its activities cascade with it), renumbers the
// remaining days, and returns the refreshed trip aggregate. Deleting the
// last day yields a trip with an empty day list, not an error.
func (s *ItineraryService) DeleteDay(ctx context.Context, userID, tripID, dayID string) (*types.Trip, error) {
	var result *types.Trip
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		trip, err := s.trips.Get(ctx, tripID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return apperrors.TripNotFound(tripID)
			}
			return apperrors.NewDatabaseError(err)
		}
		if trip.OwnerID != userID {
			return apperrors.TripNotFound(tripID)
		}

		day, err := s.days.Get(ctx, dayID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return apperrors.NotFound("Day", dayID)
			}
			return apperrors.NewDatabaseError(err)
		}
		if day.TripID != tripID {
			return apperrors.NotFound("Day", dayID)
		}

		if err := s.days.Delete(ctx, dayID); err != nil {
			return apperrors.NewDatabaseError(err)
		}

		updated, err := s.renumberAndHydrate(ctx, trip)
		if err != nil {
			return err
		}
		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, tripID)
	return result, nil
}

// SaveActivity inserts or replaces an activity after screening its time
// range against the day's other activities, and returns the hydrated day.
// An overlap aborts with a time-conflict error before anything is written.
func (s *ItineraryService) SaveActivity(ctx context.Context, userID string, activity types.Activity) (*types.Day, error) {
	var (
		result *types.Day
		tripID string
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		day, err := s.days.Get(ctx, activity.DayID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return apperrors.NotFound("Day", activity.DayID)
			}
			return apperrors.NewDatabaseError(err)
		}

		trip, err := s.trips.Get(ctx, day.TripID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return apperrors.TripNotFound(day.TripID)
			}
			return apperrors.NewDatabaseError(err)
		}
		if trip.OwnerID != userID {
			return apperrors.TripAccessDenied(userID, trip.ID)
		}
		tripID = trip.ID

		if strings.TrimSpace(activity.Name) == "" {
			return apperrors.ValidationFailed("invalid_activity", "activity name must not be blank")
		}
		if activity.EndTime != nil && activity.EndTime.Before(activity.StartTime) {
			return apperrors.ValidationFailed("invalid_activity", "activity end time cannot be before start time")
		}

		if activity.EndTime != nil {
			existing, err := s.activities.ListByDay(ctx, day.ID)
			if err != nil {
				return apperrors.NewDatabaseError(err)
			}
			if itinerary.HasOverlap(activity.StartTime, *activity.EndTime, existing, activity.ID) {
				return apperrors.TimeConflict(day.ID,
					fmt.Sprintf("range %s-%s overlaps an existing activity", activity.StartTime, *activity.EndTime))
			}
		}

		if activity.ID == "" {
			activity.ID = uuid.NewString()
		}
		if err := s.activities.Upsert(ctx, &activity); err != nil {
			return apperrors.NewDatabaseError(err)
		}

		acts, err := s.activities.ListByDay(ctx, day.ID)
		if err != nil {
			return apperrors.NewDatabaseError(err)
		}
		day.Activities = acts
		result = day
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, tripID)
	return result, nil
}

// DeleteActivity removes one activity and returns the day hydrated with the
// remaining ones.
func (s *ItineraryService) DeleteActivity(ctx context.Context, userID, dayID, activityID string) (*types.Day, error) {
	var (
		result *types.Day
		tripID string
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		day, err := s.days.Get(ctx, dayID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return apperrors.NotFound("Day", dayID)
			}
			return apperrors.NewDatabaseError(err)
		}

		trip, err := s.trips.Get(ctx, day.TripID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return apperrors.TripNotFound(day.TripID)
			}
			return apperrors.NewDatabaseError(err)
		}
		if trip.OwnerID != userID {
			return apperrors.TripAccessDenied(userID, trip.ID)
		}
		tripID = trip.ID

		if err := s.activities.Delete(ctx, activityID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return apperrors.NotFound("Activity", activityID)
			}
			return apperrors.NewDatabaseError(err)
		}

		acts, err := s.activities.ListByDay(ctx, dayID)
		if err != nil {
			return apperrors.NewDatabaseError(err)
		}
		day.Activities = acts
		result = day
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, tripID)
	return result, nil
}

// renumberAndHydrate re-reads the trip's days, renumbers them by date,
// persists only the days whose number changed, attaches activities, writes
// the trip header (bumping its updated_at), and returns the aggregate.
func (s *ItineraryService) renumberAndHydrate(ctx context.Context, trip *types.Trip) (*types.Trip, error) {
	days, err := s.days.ListByTrip(ctx, trip.ID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	if len(days) == 0 {
		trip.Days = []types.Day{}
		if err := s.trips.Upsert(ctx, trip); err != nil {
			return nil, apperrors.NewDatabaseError(err)
		}
		return trip, nil
	}

	renumbered := itinerary.Renumber(days)
	for _, day := range itinerary.ChangedDays(days, renumbered) {
		if err := s.days.Upsert(ctx, &day); err != nil {
			return nil, apperrors.NewDatabaseError(err)
		}
	}

	hydrated, err := attachActivities(ctx, s.activities, renumbered)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	trip.Days = hydrated

	if err := s.trips.Upsert(ctx, trip); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return trip, nil
}

func (s *ItineraryService) invalidate(ctx context.Context, tripID string) {
	if tripID == "" {
		return
	}
	if err := s.cache.Invalidate(ctx, tripID); err != nil {
		logger.GetLogger().Warnw("Trip cache invalidation failed", "tripId", tripID, "error", err)
	}
}
