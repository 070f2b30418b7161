package bookingRepo

import (
	"time"

	"bizschool/models"
)

// BookingRepository defines methods for booking data access. The bookings
// collection is an append-only audit record; conflict detection stays with
// the external calendar.
type BookingRepository interface {
	// FindOrCreateSession upserts a client session by fingerprint and
	// returns its id. The same fingerprint always yields the same session.
	FindOrCreateSession(session models.ClientSession) (string, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// ListByEventDateRange retrieves bookings whose event date falls in
	// [from, to), ordered by event date.
	ListByEventDateRange(from, to time.Time) ([]models.Booking, error)
}
