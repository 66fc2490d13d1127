package types

import "time"

// Trip is the top-level itinerary aggregate owned by a single user. Days are
// kept in day-number order once hydrated; day numbers are contiguous 1..N in
// ascending date order.
type Trip struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Days        []Day     `json:"days,omitempty"`
	ImageURLs   []string  `json:"imageUrls,omitempty"`
}

// TripUpdate carries a partial update of the trip header. Nil fields are
// left untouched.
type TripUpdate struct {
	Name        *string    `json:"name,omitempty"`
	Destination *string    `json:"destination,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	ImageURLs   []string   `json:"imageUrls,omitempty"`
}

// DurationDays returns the inclusive number of calendar days the trip spans.
func (t *Trip) DurationDays() int {
	return int(t.EndDate.Sub(t.StartDate).Hours()/24) + 1
}

// ContainsDate reports whether d falls within [StartDate, EndDate].
func (t *Trip) ContainsDate(d time.Time) bool {
	day := DateOnly(d)
	return !day.Before(DateOnly(t.StartDate)) && !day.After(DateOnly(t.EndDate))
}

// DateOnly truncates a timestamp to its calendar date in UTC. Trips and days
// carry date semantics only; all comparisons go through this.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
