// Package store defines the persistence interfaces consumed by the trip
// services. Implementations live in the postgres subpackage; tests use
// hand-written testify mocks.
package store

import (
	"context"

	"github.com/flyaway-travel/flyaway-backend/types"
)

// TripStore handles trip header records. Hydration of days and activities is
// the service layer's job.
type TripStore interface {
	Get(ctx context.Context, tripID string) (*types.Trip, error)
	Upsert(ctx context.Context, trip *types.Trip) error
	Delete(ctx context.Context, tripID string) error
	ListByOwner(ctx context.Context, ownerID string) ([]*types.Trip, error)
}

// DayStore handles day records within a trip.
type DayStore interface {
	ListByTrip(ctx context.Context, tripID string) ([]types.Day, error)
	Get(ctx context.Context, dayID string) (*types.Day, error)
	Upsert(ctx context.Context, day *types.Day) error
	Delete(ctx context.Context, dayID string) error
}

// ActivityStore handles activity records within a day.
type ActivityStore interface {
	ListByDay(ctx context.Context, dayID string) ([]types.Activity, error)
	Upsert(ctx context.Context, activity *types.Activity) error
	Delete(ctx context.Context, activityID string) error
}

// TxRunner executes fn within a single storage transaction. The transaction
// travels in the returned context; store methods called with that context
// join it, so a failure at any step rolls back every write made by fn.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
