package notification

import (
	"fmt"
	"regexp"
)

// emailMessages holds the translatable strings for one locale.
type emailMessages struct {
	Subject         string
	ReminderSubject string
	Header          string
	Hi              string
	Thanks          string
	SeeYou          string
	ReminderSeeYou  string
	ServiceBooked   string
	ServiceName     string
	ZoomLinkLabel   string
	Contact         string
	AddToCalendar   string
	TeamName        string
}

const DefaultLocale = "ja"

var messagesByLocale = map[string]emailMessages{
	"en": {
		Subject:         "Your free coaching session is confirmed",
		ReminderSubject: "Reminder: your coaching session is tomorrow",
		Header:          "Booking Confirmed",
		Hi:              "Hi {name},",
		Thanks:          "Thank you for booking a free coaching session with us.",
		SeeYou:          "We look forward to seeing you on {date} at {time} (JST).",
		ReminderSeeYou:  "This is a friendly reminder of your session on {date} at {time} (JST).",
		ServiceBooked:   "Service booked",
		ServiceName:     "Free Coaching Session (30 min)",
		ZoomLinkLabel:   "Zoom link",
		Contact:         "If you have any questions, just reply to this email or contact us at",
		AddToCalendar:   "Add to Calendar",
		TeamName:        "The J-Global Business School Team",
	},
	"ja": {
		Subject:         "無料コーチングセッションのご予約が確定しました",
		ReminderSubject: "リマインダー：コーチングセッションは明日です",
		Header:          "ご予約確定",
		Hi:              "{name} 様",
		Thanks:          "この度は無料コーチングセッションをご予約いただき、誠にありがとうございます。",
		SeeYou:          "{date} {time}（日本時間）にお会いできることを楽しみにしております。",
		ReminderSeeYou:  "{date} {time}（日本時間）のセッションのリマインダーです。",
		ServiceBooked:   "ご予約サービス",
		ServiceName:     "無料コーチングセッション（30分）",
		ZoomLinkLabel:   "Zoomリンク",
		Contact:         "ご不明な点がございましたら、このメールにご返信いただくか、以下までお問い合わせください",
		AddToCalendar:   "カレンダーに追加",
		TeamName:        "J-Global ビジネススクール チーム",
	},
}

// messagesFor returns the message set for a locale, falling back to the
// default locale for anything unrecognized.
func messagesFor(locale string) emailMessages {
	if m, ok := messagesByLocale[locale]; ok {
		return m
	}
	return messagesByLocale[DefaultLocale]
}

var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

// interpolate substitutes {key} placeholders in a template.
func interpolate(template string, values map[string]any) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		key := match[1 : len(match)-1]
		if v, ok := values[key]; ok {
			return fmt.Sprint(v)
		}
		return ""
	})
}

// greetingName picks the name used in the greeting: family name for
// Japanese, given name otherwise.
func greetingName(locale, firstName, lastName string) string {
	if locale == "ja" {
		return lastName
	}
	return firstName
}
