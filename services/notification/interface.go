package notification

import (
	"context"

	"bizschool/models"
)

// NotificationService defines the email notifications around a booking.
// All sends are best-effort: a confirmed booking stays confirmed even when
// a send fails.
type NotificationService interface {
	// SendConfirmation mails the requester a locale-aware confirmation with
	// an "add to calendar" deep link.
	SendConfirmation(ctx context.Context, booking *models.Booking, locale, calendarDeepLink string) error
	// SendInternalAlert mails the lecturer the new booking's details.
	SendInternalAlert(ctx context.Context, booking *models.Booking, calendarDeepLink string) error
	// SendReminder mails the requester a reminder ahead of the session.
	SendReminder(ctx context.Context, payload models.ReminderPayload) error
}
