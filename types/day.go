package types

import "time"

// Day is one calendar day within a trip. DayNumber is the day's 1-based rank
// among its siblings when sorted by date; it is recomputed after every
// mutation of the trip's day set.
type Day struct {
	ID         string     `json:"id"`
	TripID     string     `json:"tripId"`
	Date       time.Time  `json:"date"`
	DayNumber  int        `json:"dayNumber"`
	Activities []Activity `json:"activities,omitempty"`
}
