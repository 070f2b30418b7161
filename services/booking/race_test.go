package booking_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"bizschool/models"
	"bizschool/services/booking"
	"bizschool/services/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCalendar behaves like the real calendar under concurrent inserts:
// every created event immediately shows up as a busy interval.
type memoryCalendar struct {
	mu   sync.Mutex
	busy []models.BusyInterval
}

func (c *memoryCalendar) ListBusy(ctx context.Context, from, to time.Time) ([]models.BusyInterval, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.BusyInterval, len(c.busy))
	copy(out, c.busy)
	return out, nil
}

func (c *memoryCalendar) CreateEvent(ctx context.Context, event calendar.EventInput) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = append(c.busy, models.BusyInterval{Start: event.Start, End: event.End})
	return "https://calendar.google.com/event?eid=mem", nil
}

// memoryLocker grants each slot key to exactly one holder at a time.
type memoryLocker struct {
	mu   sync.Mutex
	held map[string]bool
}

func (l *memoryLocker) Acquire(ctx context.Context, date, timeOfDay string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held == nil {
		l.held = make(map[string]bool)
	}
	key := date + "T" + timeOfDay
	if l.held[key] {
		return false, nil
	}
	l.held[key] = true
	return true, nil
}

func (l *memoryLocker) Release(ctx context.Context, date, timeOfDay string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, date+"T"+timeOfDay)
}

// memoryRepo is a concurrency-safe in-memory booking store.
type memoryRepo struct {
	mu       sync.Mutex
	sessions int
	bookings []*models.Booking
}

func (r *memoryRepo) FindOrCreateSession(session models.ClientSession) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions++
	return "mem-session", nil
}

func (r *memoryRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, b)
	return nil
}

func (r *memoryRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (r *memoryRepo) ListByEventDateRange(from, to time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if !b.EventDate.Before(from) && b.EventDate.Before(to) {
			out = append(out, *b)
		}
	}
	return out, nil
}

// silentNotifier swallows every notification.
type silentNotifier struct{}

func (silentNotifier) SendConfirmation(ctx context.Context, b *models.Booking, locale, deepLink string) error {
	return nil
}

func (silentNotifier) SendInternalAlert(ctx context.Context, b *models.Booking, deepLink string) error {
	return nil
}

func (silentNotifier) SendReminder(ctx context.Context, payload models.ReminderPayload) error {
	return nil
}

func TestConcurrentAttemptsSameSlot(t *testing.T) {
	const attempts = 8

	cal := &memoryCalendar{}
	repo := &memoryRepo{}
	locker := &memoryLocker{}
	engine := &booking.DefaultBookingEngine{
		Template:     testTemplate,
		Calendar:     cal,
		Repo:         repo,
		Notifier:     silentNotifier{},
		Locker:       locker,
		Clock:        fixedClock{t: at(t, monday, "08:00")},
		LeadTime:     4 * time.Hour,
		SlotDuration: 30 * time.Minute,
	}

	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := engine.AttemptBooking(context.Background(), validRequest(), booking.RequestMeta{
				IP:        "203.0.113.7",
				UserAgent: "race-test",
				Locale:    "en",
			})
			results[i] = err
		}(i)
	}
	wg.Wait()

	confirmed := 0
	for _, err := range results {
		if err == nil {
			confirmed++
			continue
		}
		assert.Equal(t, booking.CodeSlotTaken, bookingErrorCode(t, err))
	}
	require.Equal(t, 1, confirmed, "exactly one concurrent attempt may win the slot")
	assert.Len(t, repo.bookings, 1)
	assert.Len(t, cal.busy, 1)

	t.Run("a later sequential attempt also sees the slot as taken", func(t *testing.T) {
		_, err := engine.AttemptBooking(context.Background(), validRequest(), booking.RequestMeta{})
		require.Error(t, err)
		assert.Equal(t, booking.CodeSlotTaken, bookingErrorCode(t, err))
	})
}
