package postgres

import (
	"context"
	"fmt"

	"github.com/flyaway-travel/flyaway-backend/internal/store"
	"github.com/flyaway-travel/flyaway-backend/logger"
	"github.com/flyaway-travel/flyaway-backend/types"
)

var _ store.ActivityStore = (*pgActivityStore)(nil)

type pgActivityStore struct {
	db DB
}

// NewActivityStore creates a PostgreSQL activity store.
func NewActivityStore(db DB) store.ActivityStore {
	return &pgActivityStore{db: db}
}

func (s *pgActivityStore) ListByDay(ctx context.Context, dayID string) ([]types.Activity, error) {
	query := `
        SELECT id, day_id, name, description, start_minutes, end_minutes, location
        FROM activities
        WHERE day_id = $1
        ORDER BY start_minutes, name`

	rows, err := querier(ctx, s.db).Query(ctx, query, dayID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities for day %s: %w", dayID, err)
	}
	defer rows.Close()

	var activities []types.Activity
	for rows.Next() {
		var (
			a      types.Activity
			endMin *int32
		)
		if err := rows.Scan(&a.ID, &a.DayID, &a.Name, &a.Description, &a.StartTime, &endMin, &a.Location); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		if endMin != nil {
			end := types.ClockTime(*endMin)
			a.EndTime = &end
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activity rows: %w", err)
	}
	return activities, nil
}

func (s *pgActivityStore) Upsert(ctx context.Context, activity *types.Activity) error {
	query := `
        INSERT INTO activities (id, day_id, name, description, start_minutes, end_minutes, location)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (id) DO UPDATE SET
            name = EXCLUDED.name,
            description = EXCLUDED.description,
            start_minutes = EXCLUDED.start_minutes,
            end_minutes = EXCLUDED.end_minutes,
            location = EXCLUDED.location`

	var endMin *int32
	if activity.EndTime != nil {
		v := int32(*activity.EndTime)
		endMin = &v
	}

	_, err := querier(ctx, s.db).Exec(ctx, query,
		activity.ID,
		activity.DayID,
		activity.Name,
		activity.Description,
		int32(activity.StartTime),
		endMin,
		activity.Location,
	)
	if err != nil {
		logger.GetLogger().Errorw("Failed to upsert activity", "activityId", activity.ID, "error", err)
		return fmt.Errorf("failed to upsert activity %s: %w", activity.ID, err)
	}
	return nil
}

func (s *pgActivityStore) Delete(ctx context.Context, activityID string) error {
	tag, err := querier(ctx, s.db).Exec(ctx, `DELETE FROM activities WHERE id = $1`, activityID)
	if err != nil {
		return fmt.Errorf("failed to delete activity %s: %w", activityID, err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
