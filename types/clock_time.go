package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ClockTime is a time of day expressed as minutes since midnight. Activity
// schedules are pure wall-clock times within a single day, so a full
// time.Time (with date and zone) would only invite comparison bugs.
type ClockTime int

// NewClockTime builds a ClockTime from an hour and minute.
func NewClockTime(hour, minute int) ClockTime {
	return ClockTime(hour*60 + minute)
}

// ParseClockTime parses "HH:MM" (24-hour clock).
func ParseClockTime(s string) (ClockTime, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid clock time %q: out of range", s)
	}
	return NewClockTime(hour, minute), nil
}

func (c ClockTime) Hour() int   { return int(c) / 60 }
func (c ClockTime) Minute() int { return int(c) % 60 }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Before reports whether c is strictly earlier than other.
func (c ClockTime) Before(other ClockTime) bool { return c < other }

// After reports whether c is strictly later than other.
func (c ClockTime) After(other ClockTime) bool { return c > other }

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Value implements driver.Valuer; stored as minutes since midnight.
func (c ClockTime) Value() (driver.Value, error) {
	return int64(c), nil
}

// Scan implements sql.Scanner for the integer minute columns.
func (c *ClockTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case int64:
		*c = ClockTime(v)
	case int32:
		*c = ClockTime(v)
	case int16:
		*c = ClockTime(v)
	case nil:
		return fmt.Errorf("cannot scan NULL into ClockTime")
	default:
		return fmt.Errorf("cannot scan %T into ClockTime", src)
	}
	return nil
}
