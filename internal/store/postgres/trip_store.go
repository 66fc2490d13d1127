package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/flyaway-travel/flyaway-backend/internal/store"
	"github.com/flyaway-travel/flyaway-backend/logger"
	"github.com/flyaway-travel/flyaway-backend/types"
	"github.com/jackc/pgx/v5"
)

var _ store.TripStore = (*pgTripStore)(nil)

type pgTripStore struct {
	db DB
}

// NewTripStore creates a PostgreSQL trip store.
func NewTripStore(db DB) store.TripStore {
	return &pgTripStore{db: db}
}

func (s *pgTripStore) Get(ctx context.Context, tripID string) (*types.Trip, error) {
	query := `
        SELECT id, owner_id, name, destination, start_date, end_date,
               image_urls, created_at, updated_at
        FROM trips
        WHERE id = $1`

	var trip types.Trip
	err := querier(ctx, s.db).QueryRow(ctx, query, tripID).Scan(
		&trip.ID,
		&trip.OwnerID,
		&trip.Name,
		&trip.Destination,
		&trip.StartDate,
		&trip.EndDate,
		&trip.ImageURLs,
		&trip.CreatedAt,
		&trip.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		logger.GetLogger().Errorw("Failed to get trip", "tripId", tripID, "error", err)
		return nil, fmt.Errorf("failed to query trip %s: %w", tripID, err)
	}
	return &trip, nil
}

func (s *pgTripStore) Upsert(ctx context.Context, trip *types.Trip) error {
	query := `
        INSERT INTO trips (id, owner_id, name, destination, start_date, end_date, image_urls)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (id) DO UPDATE SET
            name = EXCLUDED.name,
            destination = EXCLUDED.destination,
            start_date = EXCLUDED.start_date,
            end_date = EXCLUDED.end_date,
            image_urls = EXCLUDED.image_urls,
            updated_at = now()`

	_, err := querier(ctx, s.db).Exec(ctx, query,
		trip.ID,
		trip.OwnerID,
		trip.Name,
		trip.Destination,
		types.DateOnly(trip.StartDate),
		types.DateOnly(trip.EndDate),
		trip.ImageURLs,
	)
	if err != nil {
		logger.GetLogger().Errorw("Failed to upsert trip", "tripId", trip.ID, "error", err)
		return fmt.Errorf("failed to upsert trip %s: %w", trip.ID, err)
	}
	return nil
}

func (s *pgTripStore) Delete(ctx context.Context, tripID string) error {
	// Days and activities go with the trip via ON DELETE CASCADE.
	tag, err := querier(ctx, s.db).Exec(ctx, `DELETE FROM trips WHERE id = $1`, tripID)
	if err != nil {
		return fmt.Errorf("failed to delete trip %s: %w", tripID, err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *pgTripStore) ListByOwner(ctx context.Context, ownerID string) ([]*types.Trip, error) {
	query := `
        SELECT id, owner_id, name, destination, start_date, end_date,
               image_urls, created_at, updated_at
        FROM trips
        WHERE owner_id = $1
        ORDER BY start_date, created_at`

	rows, err := querier(ctx, s.db).Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	var trips []*types.Trip
	for rows.Next() {
		var trip types.Trip
		if err := rows.Scan(
			&trip.ID,
			&trip.OwnerID,
			&trip.Name,
			&trip.Destination,
			&trip.StartDate,
			&trip.EndDate,
			&trip.ImageURLs,
			&trip.CreatedAt,
			&trip.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan trip row: %w", err)
		}
		trips = append(trips, &trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trip rows: %w", err)
	}
	return trips, nil
}
