package config

import (
	"fmt"
	"time"
)

// WeeklyTemplate maps each weekday to the recurring coaching slot start times
// for that day, in "HH:MM" form and in presentation order. Days with no entry
// simply offer no slots.
type WeeklyTemplate map[time.Weekday][]string

// DefaultWeeklyTemplate is the school's published coaching schedule.
// Sessions run Tuesday through Saturday; Sunday and Monday are off days.
func DefaultWeeklyTemplate() WeeklyTemplate {
	return WeeklyTemplate{
		time.Tuesday:   {"09:00", "10:00", "14:00", "15:00", "16:00"},
		time.Wednesday: {"09:00", "10:00", "14:00", "15:00", "16:00"},
		time.Thursday:  {"09:00", "10:00", "14:00", "15:00", "16:00"},
		time.Friday:    {"09:00", "10:00", "14:00", "15:00"},
		time.Saturday:  {"10:00", "11:00", "13:00"},
	}
}

// Validate checks every configured slot time parses as HH:MM and that each
// day's slots are strictly ascending.
func (wt WeeklyTemplate) Validate() error {
	for day, slots := range wt {
		var prev time.Time
		for i, s := range slots {
			t, err := time.Parse("15:04", s)
			if err != nil {
				return fmt.Errorf("weekly template %s slot %q: %w", day, s, err)
			}
			if i > 0 && !t.After(prev) {
				return fmt.Errorf("weekly template %s: slot %q not after %q", day, s, slots[i-1])
			}
			prev = t
		}
	}
	return nil
}
