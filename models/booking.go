package models

import "time"

// BookingRequest is the user-submitted payload for a coaching booking.
type BookingRequest struct {
	Date      string `json:"date"` // "YYYY-MM-DD"
	Time      string `json:"time"` // "HH:MM"
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message,omitempty"`
}

// MissingFields returns the names of required fields that are absent.
// Presence is the only check performed here; format validation is left to
// the collaborators that consume the values.
func (r BookingRequest) MissingFields() []string {
	var missing []string
	if r.Date == "" {
		missing = append(missing, "date")
	}
	if r.Time == "" {
		missing = append(missing, "time")
	}
	if r.FirstName == "" {
		missing = append(missing, "firstName")
	}
	if r.LastName == "" {
		missing = append(missing, "lastName")
	}
	if r.Email == "" {
		missing = append(missing, "email")
	}
	return missing
}

// Booking is the persisted record of a confirmed coaching session. It is
// written exactly once and never mutated; the external calendar remains the
// authority for conflict detection.
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	SessionID string    `bson:"session_id" json:"sessionId"`
	FirstName string    `bson:"first_name" json:"firstName"`
	LastName  string    `bson:"last_name" json:"lastName"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone_number" json:"phone,omitempty"`
	Message   string    `bson:"message" json:"message,omitempty"`
	EventDate time.Time `bson:"event_date" json:"eventDate"` // absolute slot start in JST
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// BookingConfirmation is returned to the client on success.
type BookingConfirmation struct {
	Date             string `json:"date"`
	Time             string `json:"time"`
	SessionID        string `json:"sessionId"`
	EventLink        string `json:"eventLink,omitempty"` // link to the created calendar event
	CalendarDeepLink string `json:"calendarDeepLink"`    // "add to your calendar" render URL
	CalendarSynced   bool   `json:"calendarSynced"`
	EmailSent        bool   `json:"emailSent"`
}
