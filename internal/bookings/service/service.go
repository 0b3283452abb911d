// Package service contains the bookings business logic.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"booking_admin_backend/internal/bookings/repository"
	"booking_admin_backend/internal/bookings/transport"
	"booking_admin_backend/platform/apperr"
	"booking_admin_backend/platform/events"
	"booking_admin_backend/platform/logger"
)

// reminderLead is how far before the booked date the customer reminder
// fires.
const reminderLead = 24 * time.Hour

// ReminderScheduler enqueues a delayed booking reminder. Implemented by
// the scheduler module's asynq client; a nil scheduler disables
// reminders.
type ReminderScheduler interface {
	ScheduleBookingReminder(ctx context.Context, bookingID uuid.UUID, runAt time.Time) error
}

// Service provides business logic for bookings.
type Service struct {
	repo      repository.Repository
	bus       events.Bus
	reminders ReminderScheduler
	log       *logger.Logger
}

// New creates a new bookings service.
func New(repo repository.Repository, bus events.Bus, reminders ReminderScheduler, log *logger.Logger) *Service {
	return &Service{repo: repo, bus: bus, reminders: reminders, log: log}
}

// GetByID retrieves one booking.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.BookingResponse, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.BookingResponse{}, err
	}
	return s.toResponse(booking), nil
}

// List retrieves a booking page, optionally filtered by status.
func (s *Service) List(ctx context.Context, req transport.ListRequest) (transport.BookingListResponse, error) {
	params := repository.ListParams{Limit: normalizeLimit(req.Limit), Skip: req.Skip}
	if req.Status != "" {
		status := req.Status
		params.Status = &status
	}

	bookings, total, err := s.repo.List(ctx, params)
	if err != nil {
		return transport.BookingListResponse{}, err
	}
	return s.toListResponse(bookings, total, params.Limit, params.Skip), nil
}

// Search retrieves bookings matching the text, status, and date-range
// filters.
func (s *Service) Search(ctx context.Context, req transport.SearchRequest) (transport.BookingListResponse, error) {
	params := repository.SearchParams{
		Search: req.Search,
		Limit:  normalizeLimit(req.Limit),
		Skip:   req.Skip,
	}
	if req.Status != "" {
		status := req.Status
		params.Status = &status
	}

	var err error
	if params.DateFrom, err = parseDate(req.DateFrom); err != nil {
		return transport.BookingListResponse{}, apperr.Validation("invalid date_from")
	}
	if params.DateTo, err = parseDate(req.DateTo); err != nil {
		return transport.BookingListResponse{}, apperr.Validation("invalid date_to")
	}

	bookings, total, err := s.repo.Search(ctx, params)
	if err != nil {
		return transport.BookingListResponse{}, err
	}
	return s.toListResponse(bookings, total, params.Limit, params.Skip), nil
}

// UpdateStatus moves a booking to a new status, publishes the change,
// and schedules a customer reminder when the booking gets approved.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (transport.BookingResponse, error) {
	if !repository.ValidStatus(status) {
		return transport.BookingResponse{}, apperr.Validation("unknown booking status")
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.BookingResponse{}, err
	}
	if current.Status == status {
		return s.toResponse(current), nil
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return transport.BookingResponse{}, err
	}

	s.bus.Publish(ctx, events.BookingStatusChanged{
		BaseEvent: events.NewBaseEvent(),
		BookingID: updated.ID,
		Name:      updated.Name,
		Email:     updated.Email,
		Service:   updated.Service,
		OldStatus: current.Status,
		NewStatus: updated.Status,
	})

	if status == repository.StatusApproved {
		s.scheduleReminder(ctx, updated)
	}

	return s.toResponse(updated), nil
}

// Delete removes a booking.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// scheduleReminder enqueues the T-24h reminder. Bookings already within
// the lead window get no reminder; a scheduling failure is logged but
// never blocks the approval.
func (s *Service) scheduleReminder(ctx context.Context, booking repository.Booking) {
	if s.reminders == nil {
		return
	}

	runAt := booking.Date.Add(-reminderLead)
	if !runAt.After(time.Now()) {
		return
	}

	if err := s.reminders.ScheduleBookingReminder(ctx, booking.ID, runAt); err != nil {
		s.log.Error("failed to schedule booking reminder",
			"bookingId", booking.ID.String(), "error", err)
	}
}

func (s *Service) toResponse(b repository.Booking) transport.BookingResponse {
	resp := transport.BookingResponse{
		ID:             b.ID.String(),
		Service:        b.Service,
		Package:        b.Package,
		Name:           b.Name,
		Email:          b.Email,
		Phone:          formatPhone(b.Phone, b.PhoneCountry),
		PhoneCountry:   b.PhoneCountry,
		ServiceCountry: b.ServiceCountry,
		Address:        b.Address,
		Pincode:        b.Pincode,
		Date:           b.Date.Format("2006-01-02"),
		Message:        b.Message,
		OTPVerified:    b.OTPVerified,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
	if b.UpdatedAt != nil {
		updated := b.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &updated
	}
	return resp
}

func (s *Service) toListResponse(bookings []repository.Booking, total, limit, skip int) transport.BookingListResponse {
	items := make([]transport.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, s.toResponse(b))
	}
	return transport.BookingListResponse{Bookings: items, Total: total, Limit: limit, Skip: skip}
}

// formatPhone normalizes a stored phone number to E.164 using the
// booking's phone country. Unparseable numbers pass through untouched.
func formatPhone(raw, country string) string {
	if raw == "" {
		return raw
	}
	parsed, err := phonenumbers.Parse(raw, country)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return raw
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}

func normalizeLimit(limit int) int {
	if limit < 1 {
		return 50
	}
	return limit
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
