package handlers

import (
	"errors"
	"net/http"

	"bizschool/middleware"
	"bizschool/models"
	"bizschool/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionCookieMaxAge = 60 * 60 * 24 * 30 // 30 days

// BookingHandler exposes the coaching availability and booking endpoints.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// AvailableSlotsHandler answers "what's free on date D".
func (h *BookingHandler) AvailableSlotsHandler(c *gin.Context) {
	var input struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date"})
		return
	}

	slots, err := h.Svc.AvailableSlots(c.Request.Context(), input.Date)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":           input.Date,
		"availableSlots": slots,
	})
}

// BookHandler submits a booking attempt for the chosen slot.
func (h *BookingHandler) BookHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sessionID, _ := c.Cookie("sessionId")
	meta := booking.RequestMeta{
		IP:        middleware.ClientIP(c),
		UserAgent: c.GetHeader("User-Agent"),
		SessionID: sessionID,
		Locale:    middleware.Locale(c),
	}

	confirmation, err := h.Svc.AttemptBooking(c.Request.Context(), req, meta)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("sessionId", confirmation.SessionID, sessionCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"date":             confirmation.Date,
		"time":             confirmation.Time,
		"sessionId":        confirmation.SessionID,
		"eventLink":        confirmation.EventLink,
		"calendarDeepLink": confirmation.CalendarDeepLink,
		"calendarSynced":   confirmation.CalendarSynced,
		"emailSent":        confirmation.EmailSent,
	})
}

// respondBookingError maps the engine's tagged errors onto HTTP statuses.
// Server-side failures surface as a generic message; the detail stays in
// the log.
func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var be *booking.BookingError
	if !errors.As(err, &be) {
		h.Logger.Error("unexpected booking failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	switch be.Code {
	case booking.CodeMissingFields:
		c.JSON(http.StatusBadRequest, gin.H{"error": be.Message, "missing": be.Fields})
	case booking.CodeInvalidInput:
		c.JSON(http.StatusBadRequest, gin.H{"error": be.Message})
	case booking.CodeSlotTaken:
		c.JSON(http.StatusConflict, gin.H{"error": be.Message})
	default:
		h.Logger.Error("booking failed", zap.String("code", string(be.Code)), zap.Error(be))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}
