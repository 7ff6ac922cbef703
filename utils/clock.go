package utils

import (
	"fmt"
	"time"
)

// Clock abstracts "now" so date arithmetic stays testable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var SystemClock Clock = systemClock{}

// DayStart truncates t to local midnight.
func DayStart(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// WeekStart returns the Monday 00:00 boundary of the week containing t.
func WeekStart(t time.Time) time.Time {
	start := DayStart(t)
	offset := (int(start.Weekday()) + 6) % 7 // Monday=0 … Sunday=6
	return start.AddDate(0, 0, -offset)
}

// ParseISODate accepts the date shapes the plan service emits: full RFC 3339
// timestamps or bare YYYY-MM-DD days.
func ParseISODate(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	ts, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", s, err)
	}
	return ts, nil
}
