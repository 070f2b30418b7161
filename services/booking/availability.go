package booking

import (
	"context"
	"time"

	"bizschool/config"
	"bizschool/models"
	"bizschool/utils"

	"go.uber.org/zap"
)

// ComputeAvailableSlots filters one day's template slots down to the ones
// still bookable: at least leadTime ahead of now and clear of every busy
// interval. Pure function; template order is preserved and an empty result
// is a normal outcome, not an error.
func ComputeAvailableSlots(
	date string,
	template config.WeeklyTemplate,
	now time.Time,
	busy []models.BusyInterval,
	leadTime, slotDuration time.Duration,
) ([]string, error) {
	day, err := models.ParseDay(date)
	if err != nil {
		return nil, err
	}

	candidates := template[day.Weekday()]
	available := make([]string, 0, len(candidates))

	for _, timeOfDay := range candidates {
		slotStart, err := models.ParseSlotStart(date, timeOfDay)
		if err != nil {
			return nil, err
		}
		slotEnd := slotStart.Add(slotDuration)

		// Covers both "already past" and "too soon".
		if slotStart.Sub(now) < leadTime {
			continue
		}

		if overlapsAny(slotStart, slotEnd, busy) {
			continue
		}
		available = append(available, timeOfDay)
	}
	return available, nil
}

// overlapsAny applies the half-open interval test against every busy period.
func overlapsAny(start, end time.Time, busy []models.BusyInterval) bool {
	for _, b := range busy {
		if b.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// AvailableSlots answers "what's free on date D" using a fresh day-wide busy
// snapshot from the external calendar.
func (e *DefaultBookingEngine) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	logger := utils.GetLogger()

	dayStart, err := models.ParseDay(date)
	if err != nil {
		return nil, invalidInputError("Invalid date", err)
	}
	dayEnd := dayStart.Add(24 * time.Hour)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	busy, err := e.Calendar.ListBusy(ctx, dayStart, dayEnd)
	if err != nil {
		logger.Error("AvailableSlots: failed to fetch busy intervals",
			zap.String("date", date), zap.Error(err))
		return nil, upstreamError("Could not reach the coaching calendar", err)
	}

	slots, err := ComputeAvailableSlots(date, e.Template, e.Clock.Now(), busy, e.LeadTime, e.SlotDuration)
	if err != nil {
		return nil, invalidInputError("Invalid date", err)
	}
	return slots, nil
}
