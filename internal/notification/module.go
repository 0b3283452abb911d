// Package notification subscribes to domain events and turns them into
// customer and admin emails. Domain modules publish events without
// knowing about SMTP or templates; the dependency points this way.
package notification

import (
	"context"
	"fmt"

	"booking_admin_backend/internal/notification/email"
	"booking_admin_backend/platform/config"
	"booking_admin_backend/platform/events"
	"booking_admin_backend/platform/logger"
)

// Module wires the event bus to the email sender.
type Module struct {
	sender email.Sender
	log    *logger.Logger
}

// NewModule creates the notification module. When email is disabled in
// the configuration the module stays subscribed but drops every
// notification with a log line.
func NewModule(cfg config.EmailConfig, log *logger.Logger) *Module {
	var sender email.Sender
	if cfg.GetEmailEnabled() {
		sender = email.NewSMTPSender(cfg)
	}
	return New(sender, log)
}

// New creates a notification module with an explicit sender. A nil
// sender disables delivery.
func New(sender email.Sender, log *logger.Logger) *Module {
	return &Module{sender: sender, log: log}
}

// Sender exposes the configured sender for out-of-band callers such as
// the reminder worker. Returns nil when email is disabled.
func (m *Module) Sender() email.Sender {
	return m.sender
}

// RegisterHandlers subscribes the module to the events it emails about.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.BookingStatusChanged{}.EventName(), m)
	bus.Subscribe(events.PasswordResetRequested{}.EventName(), m)
	m.log.Info("notification module registered event handlers")
}

// Handle routes events to the appropriate email.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.BookingStatusChanged:
		return m.handleBookingStatusChanged(ctx, e)
	case events.PasswordResetRequested:
		return m.handlePasswordResetRequested(ctx, e)
	default:
		return fmt.Errorf("unhandled event type %T", event)
	}
}

func (m *Module) handleBookingStatusChanged(ctx context.Context, e events.BookingStatusChanged) error {
	if m.sender == nil {
		m.log.Debug("email disabled, dropping booking status notification", "booking_id", e.BookingID)
		return nil
	}

	err := m.sender.SendBookingStatusEmail(ctx, e.Email, email.BookingStatusData{
		Name:      e.Name,
		Service:   e.Service,
		NewStatus: e.NewStatus,
	})
	if err != nil {
		m.log.Error("failed to send booking status email", "booking_id", e.BookingID, "error", err)
		return err
	}
	return nil
}

func (m *Module) handlePasswordResetRequested(ctx context.Context, e events.PasswordResetRequested) error {
	if m.sender == nil {
		m.log.Debug("email disabled, dropping password reset notification")
		return nil
	}

	if err := m.sender.SendPasswordResetEmail(ctx, e.Email, e.ResetURL); err != nil {
		m.log.Error("failed to send password reset email", "error", err)
		return err
	}
	return nil
}

var _ events.Handler = (*Module)(nil)
