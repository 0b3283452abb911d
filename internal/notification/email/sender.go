// Package email renders and delivers the transactional emails the
// backend sends: booking status updates, booking reminders and
// password reset links.
package email

import "context"

// Sender delivers the transactional emails.
type Sender interface {
	SendBookingStatusEmail(ctx context.Context, toEmail string, data BookingStatusData) error
	SendBookingReminderEmail(ctx context.Context, toEmail string, data BookingReminderData) error
	SendPasswordResetEmail(ctx context.Context, toEmail, resetURL string) error
}

// BookingStatusData fills the booking status template.
type BookingStatusData struct {
	Name      string
	Service   string
	NewStatus string
}

// BookingReminderData fills the booking reminder template.
type BookingReminderData struct {
	Name    string
	Service string
	Date    string
	Address string
}
