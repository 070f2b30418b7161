package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeeklyTemplate(t *testing.T) {
	wt := DefaultWeeklyTemplate()
	require.NoError(t, wt.Validate())

	assert.NotContains(t, wt, time.Sunday)
	assert.NotContains(t, wt, time.Monday)
	assert.Equal(t, []string{"09:00", "10:00", "14:00", "15:00", "16:00"}, wt[time.Tuesday])
}

func TestWeeklyTemplateValidate(t *testing.T) {
	t.Run("malformed time is rejected", func(t *testing.T) {
		wt := WeeklyTemplate{time.Tuesday: {"09:00", "9am"}}
		assert.Error(t, wt.Validate())
	})

	t.Run("out of order slots are rejected", func(t *testing.T) {
		wt := WeeklyTemplate{time.Tuesday: {"14:00", "09:00"}}
		assert.Error(t, wt.Validate())
	})

	t.Run("duplicate slots are rejected", func(t *testing.T) {
		wt := WeeklyTemplate{time.Tuesday: {"09:00", "09:00"}}
		assert.Error(t, wt.Validate())
	})

	t.Run("empty days are fine", func(t *testing.T) {
		wt := WeeklyTemplate{time.Tuesday: nil}
		assert.NoError(t, wt.Validate())
	})
}
