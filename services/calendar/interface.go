package calendar

import (
	"context"
	"time"

	"bizschool/models"
)

// BusyIntervalSource lists occupied periods on the coaching calendar.
// Availability listing queries a day-wide range; the booking conflict
// re-check queries exactly the proposed slot's range.
type BusyIntervalSource interface {
	ListBusy(ctx context.Context, from, to time.Time) ([]models.BusyInterval, error)
}

// EventInput describes the calendar event created for a confirmed booking.
type EventInput struct {
	Start       time.Time
	End         time.Time
	Summary     string
	Description string
	// Private metadata attached to the event, visible to the calendar
	// owner only.
	Private map[string]string
}

// EventSink creates events on the coaching calendar. Called only after the
// conflict re-check passes.
type EventSink interface {
	CreateEvent(ctx context.Context, event EventInput) (string, error)
}

// Service combines both calendar roles; the Google implementation backs both
// with one authenticated client.
type Service interface {
	BusyIntervalSource
	EventSink
}
