package types

// Activity is a time-boxed event scheduled within a day. EndTime is optional;
// an activity without an end time never participates in overlap checks.
type Activity struct {
	ID          string     `json:"id"`
	DayID       string     `json:"dayId"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	StartTime   ClockTime  `json:"startTime"`
	EndTime     *ClockTime `json:"endTime,omitempty"`
	Location    string     `json:"location,omitempty"`
}
