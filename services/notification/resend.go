package notification

import (
	"context"
	"fmt"
	"strings"

	"bizschool/models"
	"bizschool/utils"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// ResendNotifier is the production implementation backed by Resend.
type ResendNotifier struct {
	client        *resend.Client
	fromEmail     string
	lecturerEmail string
	supportEmail  string
	zoomLink      string
}

func NewResendNotifier(apiKey, fromEmail, lecturerEmail, supportEmail, zoomLink string) (*ResendNotifier, error) {
	if apiKey == "" || fromEmail == "" {
		return nil, fmt.Errorf("notifier initialization error: missing Resend API key or sender address")
	}
	return &ResendNotifier{
		client:        resend.NewClient(apiKey),
		fromEmail:     fromEmail,
		lecturerEmail: lecturerEmail,
		supportEmail:  supportEmail,
		zoomLink:      zoomLink,
	}, nil
}

// SendConfirmation mails the requester a locale-aware confirmation.
func (n *ResendNotifier) SendConfirmation(ctx context.Context, booking *models.Booking, locale, calendarDeepLink string) error {
	msgs := messagesFor(locale)
	date := booking.EventDate.In(models.JST).Format(models.DateLayout)
	timeOfDay := booking.EventDate.In(models.JST).Format(models.TimeLayout)

	var body strings.Builder
	body.WriteString(`<div style="font-family: Arial, sans-serif; color: #333; line-height: 1.6; padding: 20px;">`)
	fmt.Fprintf(&body, `<h2 style="text-align: center; color: #2563eb;">%s</h2>`, msgs.Header)
	fmt.Fprintf(&body, `<p>%s</p>`, interpolate(msgs.Hi, map[string]any{
		"name": greetingName(locale, booking.FirstName, booking.LastName),
	}))
	fmt.Fprintf(&body, `<p>%s<br/>%s</p>`, msgs.Thanks, interpolate(msgs.SeeYou, map[string]any{
		"date": date, "time": timeOfDay,
	}))
	fmt.Fprintf(&body, `<p><strong>%s:</strong> %s<br/>`, msgs.ServiceBooked, msgs.ServiceName)
	fmt.Fprintf(&body, `<strong>%s:</strong> <a href="%s" style="color:#2563eb;">%s</a></p>`,
		msgs.ZoomLinkLabel, n.zoomLink, n.zoomLink)
	fmt.Fprintf(&body, `<p>%s <a href="mailto:%s" style="color:#2563eb;">%s</a></p>`,
		msgs.Contact, n.supportEmail, n.supportEmail)
	fmt.Fprintf(&body, `<p style="text-align: center; margin-top: 30px;">
  <a href="%s" target="_blank" rel="noopener noreferrer" style="display:inline-block; padding: 12px 24px; background-color:#2563eb; color:white; font-weight:600; border-radius:12px; text-decoration:none;">%s</a>
</p>`, calendarDeepLink, msgs.AddToCalendar)
	fmt.Fprintf(&body, `<p style="margin-top: 40px;">— %s</p></div>`, msgs.TeamName)

	return n.send(ctx, booking.Email, msgs.Subject, body.String())
}

// SendInternalAlert mails the lecturer details of the new booking.
func (n *ResendNotifier) SendInternalAlert(ctx context.Context, booking *models.Booking, calendarDeepLink string) error {
	date := booking.EventDate.In(models.JST).Format(models.DateLayout)
	timeOfDay := booking.EventDate.In(models.JST).Format(models.TimeLayout)

	var body strings.Builder
	body.WriteString(`<div style="font-family: Arial, sans-serif; color: #333; padding: 20px;">`)
	body.WriteString(`<h2>New Coaching Session Booking</h2>`)
	body.WriteString(`<p>A new user has booked a free coaching session.</p><p>`)
	fmt.Fprintf(&body, `<strong>Name:</strong> %s %s<br/>`, booking.FirstName, booking.LastName)
	fmt.Fprintf(&body, `<strong>Email:</strong> %s<br/>`, booking.Email)
	if strings.TrimSpace(booking.Phone) != "" {
		fmt.Fprintf(&body, `<strong>Phone Number:</strong> %s<br/>`, booking.Phone)
	}
	if strings.TrimSpace(booking.Message) != "" {
		fmt.Fprintf(&body, `<strong>Message:</strong> %s<br/>`, booking.Message)
	}
	fmt.Fprintf(&body, `<strong>Date:</strong> %s<br/><strong>Time:</strong> %s (JST)<br/></p>`, date, timeOfDay)
	fmt.Fprintf(&body, `<p><strong>Google Calendar Event URL:</strong><br/><a href="%s">%s</a></p>`,
		calendarDeepLink, calendarDeepLink)
	body.WriteString(`<p>— Booking Notification System</p></div>`)

	return n.send(ctx, n.lecturerEmail, "New Free Coaching Booking Received", body.String())
}

// SendReminder mails the requester ahead of the session.
func (n *ResendNotifier) SendReminder(ctx context.Context, payload models.ReminderPayload) error {
	msgs := messagesFor(payload.Locale)

	var body strings.Builder
	body.WriteString(`<div style="font-family: Arial, sans-serif; color: #333; line-height: 1.6; padding: 20px;">`)
	fmt.Fprintf(&body, `<p>%s</p>`, interpolate(msgs.Hi, map[string]any{
		"name": greetingName(payload.Locale, payload.FirstName, payload.LastName),
	}))
	fmt.Fprintf(&body, `<p>%s</p>`, interpolate(msgs.ReminderSeeYou, map[string]any{
		"date": payload.Date, "time": payload.Time,
	}))
	fmt.Fprintf(&body, `<p><strong>%s:</strong> <a href="%s" style="color:#2563eb;">%s</a></p>`,
		msgs.ZoomLinkLabel, n.zoomLink, n.zoomLink)
	fmt.Fprintf(&body, `<p style="margin-top: 40px;">— %s</p></div>`, msgs.TeamName)

	return n.send(ctx, payload.Email, msgs.ReminderSubject, body.String())
}

func (n *ResendNotifier) send(ctx context.Context, to, subject, html string) error {
	logger := utils.GetLogger()

	params := &resend.SendEmailRequest{
		From:    n.fromEmail,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}
	sent, err := n.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	logger.Info("email sent", zap.String("to", to), zap.String("emailID", sent.Id))
	return nil
}
