package service

import (
	"context"

	"github.com/flyaway-travel/flyaway-backend/internal/store"
	"github.com/flyaway-travel/flyaway-backend/types"
)

// attachActivities loads each day's activities and returns the days with
// their activity lists attached. Activities are keyed by day ID, not day
// number, so this is safe to run on freshly renumbered days.
func attachActivities(ctx context.Context, activities store.ActivityStore, days []types.Day) ([]types.Day, error) {
	for i := range days {
		acts, err := activities.ListByDay(ctx, days[i].ID)
		if err != nil {
			return nil, err
		}
		days[i].Activities = acts
	}
	return days, nil
}
