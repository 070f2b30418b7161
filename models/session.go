package models

import "time"

// ClientSession is a best-effort, non-authenticated client identity derived
// from network and device signals. It deduplicates bookings from the same
// browser; it is not an authentication mechanism.
type ClientSession struct {
	ID          string    `bson:"id" json:"id"`
	IPAddress   string    `bson:"ip_address" json:"ipAddress"`
	UserAgent   string    `bson:"user_agent" json:"userAgent"`
	Fingerprint string    `bson:"fingerprint" json:"fingerprint"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// Fingerprint derives the session fingerprint from request signals.
func Fingerprint(ip, userAgent string) string {
	return ip + ":" + userAgent
}
