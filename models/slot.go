package models

import (
	"fmt"
	"time"
)

// JST is the school's fixed operating timezone. All slot arithmetic is
// anchored here and compared as absolute instants; the fixed +09:00 offset
// carries no DST transitions.
var JST = time.FixedZone("JST", 9*60*60)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// BusyInterval is an externally sourced occupied period on the coaching
// calendar. Intervals are half-open: [Start, End).
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether the half-open interval [start, end) intersects
// this busy interval. Back-to-back ranges do not overlap.
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return start.Before(b.End) && end.After(b.Start)
}

// ParseSlotStart resolves a "YYYY-MM-DD" date and "HH:MM" time-of-day into
// the absolute slot start instant in JST.
func ParseSlotStart(date, timeOfDay string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, date, JST)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	t, err := time.Parse(TimeLayout, timeOfDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", timeOfDay, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, JST), nil
}

// ParseDay resolves a "YYYY-MM-DD" date into midnight of that day in JST.
func ParseDay(date string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, date, JST)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return d, nil
}
