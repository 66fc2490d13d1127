// Package itinerary holds the pure consistency rules for a trip's day and
// activity schedule: day renumbering and activity time-overlap detection.
// Everything here operates on in-memory snapshots; persistence is the
// caller's job.
package itinerary

import (
	"sort"

	"github.com/flyaway-travel/flyaway-backend/types"
)

// Renumber returns the given days sorted ascending by calendar date with
// contiguous day numbers assigned 1..N. The input slice is not modified.
// The sort is stable, so days sharing a date keep their input order and
// repeated calls over identical input produce identical output.
func Renumber(days []types.Day) []types.Day {
	out := make([]types.Day, len(days))
	copy(out, days)

	sort.SliceStable(out, func(i, j int) bool {
		return types.DateOnly(out[i].Date).Before(types.DateOnly(out[j].Date))
	})

	for i := range out {
		out[i].DayNumber = i + 1
	}
	return out
}

// ChangedDays returns the renumbered days whose assigned number differs from
// what was previously stored for the same day ID. Callers persist only these
// rows; rewriting the whole set would also be correct, just wasteful.
func ChangedDays(before, renumbered []types.Day) []types.Day {
	prev := make(map[string]int, len(before))
	for _, d := range before {
		prev[d.ID] = d.DayNumber
	}

	var changed []types.Day
	for _, d := range renumbered {
		if old, ok := prev[d.ID]; !ok || old != d.DayNumber {
			changed = append(changed, d)
		}
	}
	return changed
}
