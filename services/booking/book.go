package booking

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"bizschool/models"
	"bizschool/services/calendar"
	"bizschool/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AttemptBooking drives one booking attempt through its states: validate,
// re-check conflicts against a fresh calendar snapshot, persist, notify.
// The conflict re-check never reuses the snapshot that rendered the original
// availability list; another booking may have landed since.
func (e *DefaultBookingEngine) AttemptBooking(
	ctx context.Context,
	req models.BookingRequest,
	meta RequestMeta,
) (*models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	// Validating. No I/O happens before this passes.
	if missing := req.MissingFields(); len(missing) > 0 {
		return nil, missingFieldsError(missing)
	}
	slotStart, err := models.ParseSlotStart(req.Date, req.Time)
	if err != nil {
		return nil, invalidInputError("Invalid date or time", err)
	}
	slotEnd := slotStart.Add(e.SlotDuration)

	// Serialize attempts per slot before the re-check; a concurrent attempt
	// for the same slot fails fast instead of racing the calendar insert.
	acquired, err := e.Locker.Acquire(ctx, req.Date, req.Time)
	if err != nil {
		logger.Error("AttemptBooking: slot lock unavailable",
			zap.String("date", req.Date), zap.String("time", req.Time), zap.Error(err))
		return nil, upstreamError("Booking is temporarily unavailable", err)
	}
	if !acquired {
		return nil, slotTakenError()
	}
	defer e.Locker.Release(ctx, req.Date, req.Time)

	// CheckingConflict: fresh snapshot over exactly [slotStart, slotEnd).
	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	busy, err := e.Calendar.ListBusy(checkCtx, slotStart, slotEnd)
	cancel()
	if err != nil {
		logger.Error("AttemptBooking: conflict re-check failed",
			zap.String("date", req.Date), zap.String("time", req.Time), zap.Error(err))
		return nil, upstreamError("Could not verify slot availability", err)
	}
	if overlapsAny(slotStart, slotEnd, busy) {
		return nil, slotTakenError()
	}

	// Persisting.
	sessionID, err := e.resolveSession(meta)
	if err != nil {
		logger.Error("AttemptBooking: session upsert failed", zap.Error(err))
		return nil, persistenceError(err)
	}

	booking := &models.Booking{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		EventDate: slotStart,
		CreatedAt: e.Clock.Now(),
	}
	if err := e.Repo.Create(booking); err != nil {
		logger.Error("AttemptBooking: failed to persist booking",
			zap.String("bookingID", booking.ID), zap.Error(err))
		return nil, persistenceError(err)
	}

	// Notifying. The booking is committed from here on; downstream failures
	// are logged and reflected in the confirmation flags, never rolled back.
	deepLink := calendarRenderURL(slotStart, slotEnd)
	confirmation := &models.BookingConfirmation{
		Date:             req.Date,
		Time:             req.Time,
		SessionID:        sessionID,
		CalendarDeepLink: deepLink,
	}

	notifyCtx, cancelNotify := context.WithTimeout(ctx, 10*time.Second)
	defer cancelNotify()

	eventLink, err := e.Calendar.CreateEvent(notifyCtx, calendar.EventInput{
		Start:       slotStart,
		End:         slotEnd,
		Summary:     "Free Coaching Session",
		Description: eventDescription(req),
		Private: map[string]string{
			"firstName": req.FirstName,
			"lastName":  req.LastName,
			"email":     req.Email,
			"phone":     req.Phone,
			"message":   req.Message,
		},
	})
	if err != nil {
		logger.Error("AttemptBooking: failed to create calendar event",
			zap.String("bookingID", booking.ID), zap.Error(err))
	} else {
		confirmation.EventLink = eventLink
		confirmation.CalendarSynced = true
	}

	if err := e.Notifier.SendConfirmation(notifyCtx, booking, meta.Locale, deepLink); err != nil {
		logger.Error("AttemptBooking: confirmation email failed",
			zap.String("bookingID", booking.ID), zap.Error(err))
	} else {
		confirmation.EmailSent = true
	}
	if err := e.Notifier.SendInternalAlert(notifyCtx, booking, deepLink); err != nil {
		logger.Error("AttemptBooking: internal alert failed",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}

	e.scheduleReminder(ctx, booking, req, meta.Locale, slotStart)

	logger.Info("booking confirmed",
		zap.String("bookingID", booking.ID),
		zap.String("date", req.Date),
		zap.String("time", req.Time),
		zap.Bool("calendarSynced", confirmation.CalendarSynced))
	return confirmation, nil
}

// resolveSession reuses the cookie session id when present, otherwise
// upserts a session keyed by the client fingerprint.
func (e *DefaultBookingEngine) resolveSession(meta RequestMeta) (string, error) {
	if meta.SessionID != "" {
		return meta.SessionID, nil
	}
	return e.Repo.FindOrCreateSession(models.ClientSession{
		IPAddress:   meta.IP,
		UserAgent:   meta.UserAgent,
		Fingerprint: models.Fingerprint(meta.IP, meta.UserAgent),
	})
}

// scheduleReminder enqueues the day-before reminder when there is still a
// full day before the session.
func (e *DefaultBookingEngine) scheduleReminder(ctx context.Context, booking *models.Booking, req models.BookingRequest, locale string, slotStart time.Time) {
	if e.Reminders == nil {
		return
	}
	fireAt := slotStart.Add(-24 * time.Hour)
	if !fireAt.After(e.Clock.Now()) {
		return
	}
	payload := models.ReminderPayload{
		BookingID: booking.ID,
		FirstName: booking.FirstName,
		LastName:  booking.LastName,
		Email:     booking.Email,
		Date:      req.Date,
		Time:      req.Time,
		Locale:    locale,
	}
	if err := e.Reminders.Schedule(ctx, payload, fireAt); err != nil {
		utils.GetLogger().Error("AttemptBooking: failed to schedule reminder",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
}

// eventDescription renders the calendar event body shown to the lecturer.
func eventDescription(req models.BookingRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Free coaching session with %s %s\n", req.FirstName, req.LastName)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	if strings.TrimSpace(req.Phone) != "" {
		fmt.Fprintf(&b, "Phone: %s\n", req.Phone)
	}
	if strings.TrimSpace(req.Message) != "" {
		fmt.Fprintf(&b, "Message: %s\n", req.Message)
	}
	return b.String()
}

// calendarRenderURL builds the "add to your calendar" deep link included in
// confirmations. Not a stored artifact.
func calendarRenderURL(start, end time.Time) string {
	const compact = "20060102T150405Z"
	dates := start.UTC().Format(compact) + "/" + end.UTC().Format(compact)
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", "Free Coaching Session")
	q.Set("dates", dates)
	q.Set("details", "Your free coaching session with our expert")
	q.Set("location", "Online")
	return "https://calendar.google.com/calendar/render?" + q.Encode()
}
