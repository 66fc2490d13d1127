package service

import (
	"context"

	"github.com/flyaway-travel/flyaway-backend/types"
)

// TripCache caches hydrated trip aggregates. A nil trip with a nil error is
// a miss; cache failures are logged and treated as misses by callers, never
// surfaced to clients.
type TripCache interface {
	Get(ctx context.Context, tripID string) (*types.Trip, error)
	Set(ctx context.Context, trip *types.Trip) error
	Invalidate(ctx context.Context, tripID string) error
}

// NopTripCache satisfies TripCache without caching anything. Used when Redis
// is not configured and in tests that don't care about caching.
type NopTripCache struct{}

func (NopTripCache) Get(ctx context.Context, tripID string) (*types.Trip, error) { return nil, nil }
func (NopTripCache) Set(ctx context.Context, trip *types.Trip) error             { return nil }
func (NopTripCache) Invalidate(ctx context.Context, tripID string) error         { return nil }
