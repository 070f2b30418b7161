package models

// ReminderPayload is the asynq task body for a pre-session reminder email.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Locale    string `json:"locale"`
}
