package booking

import "strings"

// ErrorCode tags every failure the booking engine can surface, so callers
// map outcomes without duck-typing messages.
type ErrorCode string

const (
	CodeMissingFields       ErrorCode = "missing_fields"
	CodeInvalidInput        ErrorCode = "invalid_input"
	CodeSlotTaken           ErrorCode = "slot_taken"
	CodeUpstreamUnavailable ErrorCode = "upstream_unavailable"
	CodePersistence         ErrorCode = "persistence_error"
)

// BookingError is the single error type crossing the engine's boundary.
type BookingError struct {
	Code    ErrorCode
	Message string
	// Fields lists the missing request fields for CodeMissingFields.
	Fields []string
	cause  error
}

func (e *BookingError) Error() string {
	if len(e.Fields) > 0 {
		return e.Message + ": " + strings.Join(e.Fields, ", ")
	}
	return e.Message
}

func (e *BookingError) Unwrap() error { return e.cause }

func missingFieldsError(fields []string) *BookingError {
	return &BookingError{Code: CodeMissingFields, Message: "Missing required info", Fields: fields}
}

func invalidInputError(msg string, cause error) *BookingError {
	return &BookingError{Code: CodeInvalidInput, Message: msg, cause: cause}
}

func slotTakenError() *BookingError {
	return &BookingError{Code: CodeSlotTaken, Message: "This time slot is already booked."}
}

func upstreamError(msg string, cause error) *BookingError {
	return &BookingError{Code: CodeUpstreamUnavailable, Message: msg, cause: cause}
}

func persistenceError(cause error) *BookingError {
	return &BookingError{Code: CodePersistence, Message: "Failed to record the booking", cause: cause}
}
