package calendar

import (
	"context"
	"fmt"
	"os"
	"time"

	"bizschool/models"
	"bizschool/utils"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleCalendar implements Service against the school's Google Calendar
// using a service account. No user OAuth flow is involved.
type GoogleCalendar struct {
	svc        *gcal.Service
	calendarID string
}

// NewGoogleCalendar builds an authenticated client from a service-account
// credentials JSON file.
func NewGoogleCalendar(ctx context.Context, credentialsFile, calendarID string) (*GoogleCalendar, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read Google credentials: %w", err)
	}

	conf, err := google.JWTConfigFromJSON(data, gcal.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	svc, err := gcal.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &GoogleCalendar{svc: svc, calendarID: calendarID}, nil
}

// ListBusy fetches events in [from, to) and maps them to busy intervals.
// All-day entries (date without a dateTime) are skipped, matching what the
// booking form offers: timed 30-minute sessions only.
func (g *GoogleCalendar) ListBusy(ctx context.Context, from, to time.Time) ([]models.BusyInterval, error) {
	logger := utils.GetLogger()

	events, err := g.svc.Events.List(g.calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	busy := make([]models.BusyInterval, 0, len(events.Items))
	for _, ev := range events.Items {
		if ev.Start == nil || ev.End == nil || ev.Start.DateTime == "" || ev.End.DateTime == "" {
			continue
		}
		start, err := time.Parse(time.RFC3339, ev.Start.DateTime)
		if err != nil {
			logger.Warn("skipping event with unparseable start",
				zap.String("eventID", ev.Id), zap.Error(err))
			continue
		}
		end, err := time.Parse(time.RFC3339, ev.End.DateTime)
		if err != nil {
			logger.Warn("skipping event with unparseable end",
				zap.String("eventID", ev.Id), zap.Error(err))
			continue
		}
		busy = append(busy, models.BusyInterval{Start: start, End: end})
	}
	return busy, nil
}

// CreateEvent inserts the booking event and returns its HTML link.
func (g *GoogleCalendar) CreateEvent(ctx context.Context, event EventInput) (string, error) {
	ev := &gcal.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start: &gcal.EventDateTime{
			DateTime: event.Start.Format(time.RFC3339),
			TimeZone: "Asia/Tokyo",
		},
		End: &gcal.EventDateTime{
			DateTime: event.End.Format(time.RFC3339),
			TimeZone: "Asia/Tokyo",
		},
	}
	if len(event.Private) > 0 {
		ev.ExtendedProperties = &gcal.EventExtendedProperties{Private: event.Private}
	}

	created, err := g.svc.Events.Insert(g.calendarID, ev).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to insert calendar event: %w", err)
	}
	return created.HtmlLink, nil
}
