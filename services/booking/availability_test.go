package booking_test

import (
	"testing"
	"time"

	"bizschool/config"
	"bizschool/models"
	"bizschool/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tuesday = "2025-11-18"
	monday  = "2025-11-17"
	sunday  = "2025-11-16"
)

var testTemplate = config.WeeklyTemplate{
	time.Tuesday: {"09:00", "10:00", "14:00"},
}

func at(t *testing.T, date, timeOfDay string) time.Time {
	t.Helper()
	instant, err := models.ParseSlotStart(date, timeOfDay)
	require.NoError(t, err)
	return instant
}

func busyBetween(t *testing.T, date, from, to string) models.BusyInterval {
	t.Helper()
	return models.BusyInterval{Start: at(t, date, from), End: at(t, date, to)}
}

func TestComputeAvailableSlots(t *testing.T) {
	leadTime := 4 * time.Hour
	slotDuration := 30 * time.Minute

	t.Run("same-day query drops slots inside the lead time", func(t *testing.T) {
		now := at(t, tuesday, "08:00")

		slots, err := booking.ComputeAvailableSlots(tuesday, testTemplate, now, nil, leadTime, slotDuration)
		require.NoError(t, err)
		assert.Equal(t, []string{"14:00"}, slots)
	})

	t.Run("next-day query returns the full template", func(t *testing.T) {
		now := at(t, monday, "08:00")

		slots, err := booking.ComputeAvailableSlots(tuesday, testTemplate, now, nil, leadTime, slotDuration)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:00", "14:00"}, slots)
	})

	t.Run("exact busy interval removes the slot", func(t *testing.T) {
		now := at(t, monday, "08:00")
		busy := []models.BusyInterval{busyBetween(t, tuesday, "14:00", "14:30")}

		slots, err := booking.ComputeAvailableSlots(tuesday, testTemplate, now, busy, leadTime, slotDuration)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:00"}, slots)
	})

	t.Run("partial overlap removes the slot", func(t *testing.T) {
		now := at(t, monday, "08:00")
		busy := []models.BusyInterval{busyBetween(t, tuesday, "13:45", "14:15")}

		slots, err := booking.ComputeAvailableSlots(tuesday, testTemplate, now, busy, leadTime, slotDuration)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:00"}, slots)
	})

	t.Run("busy interval ending at slot start does not conflict", func(t *testing.T) {
		now := at(t, monday, "08:00")
		busy := []models.BusyInterval{busyBetween(t, tuesday, "13:30", "14:00")}

		slots, err := booking.ComputeAvailableSlots(tuesday, testTemplate, now, busy, leadTime, slotDuration)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:00", "14:00"}, slots)
	})

	t.Run("busy interval starting at slot end does not conflict", func(t *testing.T) {
		now := at(t, monday, "08:00")
		busy := []models.BusyInterval{busyBetween(t, tuesday, "14:30", "15:00")}

		slots, err := booking.ComputeAvailableSlots(tuesday, testTemplate, now, busy, leadTime, slotDuration)
		require.NoError(t, err)
		assert.Contains(t, slots, "14:00")
	})

	t.Run("weekday without template entry yields no slots", func(t *testing.T) {
		now := at(t, monday, "08:00")

		slots, err := booking.ComputeAvailableSlots(sunday, testTemplate, now, nil, leadTime, slotDuration)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("same inputs yield identical output", func(t *testing.T) {
		now := at(t, monday, "08:00")
		busy := []models.BusyInterval{busyBetween(t, tuesday, "09:00", "09:30")}

		first, err := booking.ComputeAvailableSlots(tuesday, testTemplate, now, busy, leadTime, slotDuration)
		require.NoError(t, err)
		second, err := booking.ComputeAvailableSlots(tuesday, testTemplate, now, busy, leadTime, slotDuration)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("every returned slot comes from the template", func(t *testing.T) {
		now := at(t, monday, "08:00")

		slots, err := booking.ComputeAvailableSlots(tuesday, testTemplate, now, nil, leadTime, slotDuration)
		require.NoError(t, err)
		for _, s := range slots {
			assert.Contains(t, testTemplate[time.Tuesday], s)
		}
	})

	t.Run("lead-time property holds for every returned slot", func(t *testing.T) {
		now := at(t, tuesday, "05:59")

		slots, err := booking.ComputeAvailableSlots(tuesday, testTemplate, now, nil, leadTime, slotDuration)
		require.NoError(t, err)
		for _, s := range slots {
			start := at(t, tuesday, s)
			assert.GreaterOrEqual(t, start.Sub(now), leadTime)
		}
		assert.Equal(t, []string{"10:00", "14:00"}, slots)
	})

	t.Run("malformed date is an error", func(t *testing.T) {
		now := at(t, monday, "08:00")

		_, err := booking.ComputeAvailableSlots("18-11-2025", testTemplate, now, nil, leadTime, slotDuration)
		assert.Error(t, err)
	})
}
