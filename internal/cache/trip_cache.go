// Package cache provides the Redis-backed read cache for hydrated trip
// aggregates. Services treat cache failures as misses, so everything here
// returns plain errors for the caller to log.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/flyaway-travel/flyaway-backend/types"
	"github.com/redis/go-redis/v9"
)

const (
	// Redis key prefix for cached trip aggregates
	tripKeyPrefix = "trip:"

	defaultTripTTL = 5 * time.Minute
)

// RedisTripCache caches fully hydrated trips (days and activities included)
// as JSON blobs with a TTL. Writers invalidate after every mutation, so the
// TTL only bounds staleness when an invalidation is lost.
type RedisTripCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTripCache creates a trip cache on the given client. A zero ttl
// falls back to the default.
func NewRedisTripCache(client *redis.Client, ttl time.Duration) *RedisTripCache {
	if ttl <= 0 {
		ttl = defaultTripTTL
	}
	return &RedisTripCache{client: client, ttl: ttl}
}

func tripKey(tripID string) string {
	return tripKeyPrefix + tripID
}

// Get returns the cached trip, or (nil, nil) on a miss.
func (c *RedisTripCache) Get(ctx context.Context, tripID string) (*types.Trip, error) {
	data, err := c.client.Get(ctx, tripKey(tripID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read trip %s from cache: %w", tripID, err)
	}

	var trip types.Trip
	if err := json.Unmarshal(data, &trip); err != nil {
		return nil, fmt.Errorf("failed to decode cached trip %s: %w", tripID, err)
	}
	return &trip, nil
}

// Set stores the trip with the cache's TTL.
func (c *RedisTripCache) Set(ctx context.Context, trip *types.Trip) error {
	data, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("failed to marshal trip %s: %w", trip.ID, err)
	}
	if err := c.client.Set(ctx, tripKey(trip.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache trip %s: %w", trip.ID, err)
	}
	return nil
}

// Invalidate drops the cached trip. Deleting a key that is not present is
// not an error.
func (c *RedisTripCache) Invalidate(ctx context.Context, tripID string) error {
	if err := c.client.Del(ctx, tripKey(tripID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate trip %s: %w", tripID, err)
	}
	return nil
}
