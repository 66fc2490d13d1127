package itinerary

import "github.com/flyaway-travel/flyaway-backend/types"

// HasOverlap reports whether the candidate [start, end) range conflicts with
// any of the day's existing activities. The activity identified by excludeID
// is skipped so an edit never collides with itself, and activities without an
// end time never conflict. Two ranges overlap when candStart < otherEnd &&
// candEnd > otherStart; an activity starting exactly when another ends is
// allowed.
func HasOverlap(start, end types.ClockTime, existing []types.Activity, excludeID string) bool {
	for _, other := range existing {
		if excludeID != "" && other.ID == excludeID {
			continue
		}
		if other.EndTime == nil {
			continue
		}
		if start.Before(*other.EndTime) && end.After(other.StartTime) {
			return true
		}
	}
	return false
}
