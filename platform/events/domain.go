package events

import "github.com/google/uuid"

// Domain event definitions. The bus infrastructure above is generic;
// these are the concrete events the modules exchange.

// BookingStatusChanged is published whenever an admin moves a booking
// to a new status. The notification module turns it into a customer
// email.
type BookingStatusChanged struct {
	BaseEvent
	BookingID uuid.UUID `json:"bookingId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Service   string    `json:"service"`
	OldStatus string    `json:"oldStatus"`
	NewStatus string    `json:"newStatus"`
}

func (e BookingStatusChanged) EventName() string { return "bookings.status.changed" }

// PasswordResetRequested is published when an admin asks for a
// password reset link.
type PasswordResetRequested struct {
	BaseEvent
	Email    string `json:"email"`
	Token    string `json:"token"`
	ResetURL string `json:"resetUrl"`
}

func (e PasswordResetRequested) EventName() string { return "auth.password.reset_requested" }
