package booking

import (
	"context"
	"time"

	"bizschool/config"
	bookingRepo "bizschool/database/repository/booking"
	"bizschool/models"
	"bizschool/services/calendar"
	"bizschool/services/notification"
)

// RequestMeta carries the per-request client signals the engine needs for
// session identity and localization.
type RequestMeta struct {
	IP        string
	UserAgent string
	SessionID string // existing session cookie value, if any
	Locale    string
}

// BookingService is the public surface of the coaching booking engine.
type BookingService interface {
	// AvailableSlots lists the bookable slot start times for a date.
	AvailableSlots(ctx context.Context, date string) ([]string, error)
	// AttemptBooking re-validates the chosen slot against a fresh calendar
	// snapshot, persists the booking, and triggers notifications.
	AttemptBooking(ctx context.Context, req models.BookingRequest, meta RequestMeta) (*models.BookingConfirmation, error)
}

// ReminderScheduler enqueues the pre-session reminder email.
type ReminderScheduler interface {
	Schedule(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}

// DefaultBookingEngine is the production booking coordinator.
type DefaultBookingEngine struct {
	Template     config.WeeklyTemplate
	Calendar     calendar.Service
	Repo         bookingRepo.BookingRepository
	Notifier     notification.NotificationService
	Locker       SlotLocker
	Reminders    ReminderScheduler
	Clock        Clock
	LeadTime     time.Duration
	SlotDuration time.Duration
}
