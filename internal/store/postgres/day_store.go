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

var _ store.DayStore = (*pgDayStore)(nil)

type pgDayStore struct {
	db DB
}

// NewDayStore creates a PostgreSQL day store.
func NewDayStore(db DB) store.DayStore {
	return &pgDayStore{db: db}
}

func (s *pgDayStore) ListByTrip(ctx context.Context, tripID string) ([]types.Day, error) {
	query := `
        SELECT id, trip_id, date, day_number
        FROM days
        WHERE trip_id = $1
        ORDER BY date, day_number`

	rows, err := querier(ctx, s.db).Query(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list days for trip %s: %w", tripID, err)
	}
	defer rows.Close()

	var days []types.Day
	for rows.Next() {
		var day types.Day
		if err := rows.Scan(&day.ID, &day.TripID, &day.Date, &day.DayNumber); err != nil {
			return nil, fmt.Errorf("failed to scan day row: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate day rows: %w", err)
	}
	return days, nil
}

func (s *pgDayStore) Get(ctx context.Context, dayID string) (*types.Day, error) {
	var day types.Day
	err := querier(ctx, s.db).QueryRow(ctx,
		`SELECT id, trip_id, date, day_number FROM days WHERE id = $1`, dayID,
	).Scan(&day.ID, &day.TripID, &day.Date, &day.DayNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		logger.GetLogger().Errorw("Failed to get day", "dayId", dayID, "error", err)
		return nil, fmt.Errorf("failed to query day %s: %w", dayID, err)
	}
	return &day, nil
}

func (s *pgDayStore) Upsert(ctx context.Context, day *types.Day) error {
	query := `
        INSERT INTO days (id, trip_id, date, day_number)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO UPDATE SET
            date = EXCLUDED.date,
            day_number = EXCLUDED.day_number`

	_, err := querier(ctx, s.db).Exec(ctx, query,
		day.ID, day.TripID, types.DateOnly(day.Date), day.DayNumber)
	if err != nil {
		logger.GetLogger().Errorw("Failed to upsert day", "dayId", day.ID, "error", err)
		return fmt.Errorf("failed to upsert day %s: %w", day.ID, err)
	}
	return nil
}

func (s *pgDayStore) Delete(ctx context.Context, dayID string) error {
	// Activities go with the day via ON DELETE CASCADE.
	tag, err := querier(ctx, s.db).Exec(ctx, `DELETE FROM days WHERE id = $1`, dayID)
	if err != nil {
		return fmt.Errorf("failed to delete day %s: %w", dayID, err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
