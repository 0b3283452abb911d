package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	bookingrepo "booking_admin_backend/internal/bookings/repository"
	"booking_admin_backend/internal/notification/email"
	"booking_admin_backend/platform/apperr"
	"booking_admin_backend/platform/logger"
)

type fakeBookingReader struct {
	bookings map[uuid.UUID]bookingrepo.Booking
}

func (f *fakeBookingReader) GetByID(_ context.Context, id uuid.UUID) (bookingrepo.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return bookingrepo.Booking{}, apperr.NotFound("booking not found")
	}
	return booking, nil
}

func (f *fakeBookingReader) List(context.Context, bookingrepo.ListParams) ([]bookingrepo.Booking, int, error) {
	return nil, 0, nil
}

func (f *fakeBookingReader) Search(context.Context, bookingrepo.SearchParams) ([]bookingrepo.Booking, int, error) {
	return nil, 0, nil
}

type recordingSender struct {
	reminders []email.BookingReminderData
	to        []string
}

func (r *recordingSender) SendBookingStatusEmail(context.Context, string, email.BookingStatusData) error {
	return nil
}

func (r *recordingSender) SendBookingReminderEmail(_ context.Context, to string, data email.BookingReminderData) error {
	r.to = append(r.to, to)
	r.reminders = append(r.reminders, data)
	return nil
}

func (r *recordingSender) SendPasswordResetEmail(context.Context, string, string) error {
	return nil
}

func newTestWorker(reader *fakeBookingReader, sender email.Sender) *Worker {
	return &Worker{bookings: reader, sender: sender, log: logger.New("test")}
}

func newReminderFixture(t *testing.T) (context.Context, *Worker, *fakeBookingReader, *recordingSender) {
	t.Helper()
	reader := &fakeBookingReader{bookings: map[uuid.UUID]bookingrepo.Booking{}}
	sender := &recordingSender{}
	return context.Background(), newTestWorker(reader, sender), reader, sender
}

func TestReminderIsSentForApprovedBooking(t *testing.T) {
	id := uuid.New()
	ctx, worker, reader, sender := newReminderFixture(t)
	reader.bookings[id] = bookingrepo.Booking{
		ID:      id,
		Name:    "Sita Sharma",
		Email:   "sita@example.com",
		Service: "wedding photography",
		Address: "Thamel, Kathmandu",
		Date:    time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Status:  bookingrepo.StatusApproved,
	}

	task, err := NewBookingReminderTask(BookingReminderPayload{BookingID: id.String()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := worker.handleBookingReminder(ctx, task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sender.reminders) != 1 {
		t.Fatalf("expected one reminder, got %d", len(sender.reminders))
	}
	if sender.to[0] != "sita@example.com" {
		t.Fatalf("reminder sent to wrong address: %q", sender.to[0])
	}
	if sender.reminders[0].Date != "Tuesday, 15 September 2026" {
		t.Fatalf("unexpected formatted date: %q", sender.reminders[0].Date)
	}
}

func TestReminderIsSkippedWhenBookingNoLongerApproved(t *testing.T) {
	id := uuid.New()
	ctx, worker, reader, sender := newReminderFixture(t)
	reader.bookings[id] = bookingrepo.Booking{
		ID:     id,
		Email:  "sita@example.com",
		Status: bookingrepo.StatusCancelled,
	}

	task, err := NewBookingReminderTask(BookingReminderPayload{BookingID: id.String()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := worker.handleBookingReminder(ctx, task); err != nil {
		t.Fatalf("expected a silent skip, got %v", err)
	}
	if len(sender.reminders) != 0 {
		t.Fatalf("expected no reminder, got %d", len(sender.reminders))
	}
}

func TestReminderIsSkippedWhenBookingWasDeleted(t *testing.T) {
	id := uuid.New()
	ctx, worker, _, sender := newReminderFixture(t)

	task, err := NewBookingReminderTask(BookingReminderPayload{BookingID: id.String()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := worker.handleBookingReminder(ctx, task); err != nil {
		t.Fatalf("expected a silent skip for a deleted booking, got %v", err)
	}
	if len(sender.reminders) != 0 {
		t.Fatalf("expected no reminder, got %d", len(sender.reminders))
	}
}
