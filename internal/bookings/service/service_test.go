package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"booking_admin_backend/internal/bookings/repository"
	"booking_admin_backend/platform/events"
	"booking_admin_backend/platform/logger"
)

type fakeRepo struct {
	bookings map[uuid.UUID]repository.Booking
	updated  []string
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return repository.Booking{}, repositoryNotFound()
	}
	return b, nil
}

func (f *fakeRepo) List(_ context.Context, _ repository.ListParams) ([]repository.Booking, int, error) {
	var out []repository.Booking
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Search(_ context.Context, _ repository.SearchParams) ([]repository.Booking, int, error) {
	return nil, 0, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) (repository.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return repository.Booking{}, repositoryNotFound()
	}
	b.Status = status
	f.bookings[id] = b
	f.updated = append(f.updated, status)
	return b, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.bookings, id)
	return nil
}

func repositoryNotFound() error {
	return context.Canceled // sentinel is irrelevant; only propagation is asserted
}

type recordingBus struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingBus) Publish(_ context.Context, event events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingBus) PublishSync(ctx context.Context, event events.Event) error {
	r.Publish(ctx, event)
	return nil
}

func (r *recordingBus) Subscribe(string, events.Handler) {}

func (r *recordingBus) published() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Event(nil), r.events...)
}

type fakeScheduler struct {
	mu    sync.Mutex
	runAt []time.Time
}

func (f *fakeScheduler) ScheduleBookingReminder(_ context.Context, _ uuid.UUID, runAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runAt = append(f.runAt, runAt)
	return nil
}

func (f *fakeScheduler) scheduled() []time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Time(nil), f.runAt...)
}

func newBooking(status string, date time.Time) repository.Booking {
	return repository.Booking{
		ID:           uuid.New(),
		Service:      "puja",
		Package:      "standard",
		Name:         "Asha Sharma",
		Email:        "asha@example.com",
		Phone:        "9841234567",
		PhoneCountry: "NP",
		Date:         date,
		Status:       status,
		CreatedAt:    time.Now(),
	}
}

func newTestService(repo repository.Repository, bus events.Bus, sched ReminderScheduler) *Service {
	return New(repo, bus, sched, logger.New("test"))
}

func TestUpdateStatusPublishesChangeEvent(t *testing.T) {
	booking := newBooking(repository.StatusPending, time.Now().AddDate(0, 0, 7))
	repo := &fakeRepo{bookings: map[uuid.UUID]repository.Booking{booking.ID: booking}}
	bus := &recordingBus{}

	svc := newTestService(repo, bus, nil)

	resp, err := svc.UpdateStatus(context.Background(), booking.ID, repository.StatusCancelled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != repository.StatusCancelled {
		t.Fatalf("expected cancelled, got %s", resp.Status)
	}

	published := bus.published()
	if len(published) != 1 {
		t.Fatalf("expected one event, got %d", len(published))
	}
	change, ok := published[0].(events.BookingStatusChanged)
	if !ok {
		t.Fatalf("unexpected event type %T", published[0])
	}
	if change.OldStatus != repository.StatusPending || change.NewStatus != repository.StatusCancelled {
		t.Fatalf("unexpected transition %s -> %s", change.OldStatus, change.NewStatus)
	}
}

func TestUpdateStatusSameStatusIsNoOp(t *testing.T) {
	booking := newBooking(repository.StatusPending, time.Now().AddDate(0, 0, 7))
	repo := &fakeRepo{bookings: map[uuid.UUID]repository.Booking{booking.ID: booking}}
	bus := &recordingBus{}

	svc := newTestService(repo, bus, nil)

	if _, err := svc.UpdateStatus(context.Background(), booking.ID, repository.StatusPending); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bus.published()) != 0 {
		t.Fatal("expected no event for a same-status update")
	}
	if len(repo.updated) != 0 {
		t.Fatal("expected no write for a same-status update")
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := newTestService(&fakeRepo{bookings: map[uuid.UUID]repository.Booking{}}, &recordingBus{}, nil)

	if _, err := svc.UpdateStatus(context.Background(), uuid.New(), "archived"); err == nil {
		t.Fatal("expected validation error for unknown status")
	}
}

func TestApprovalSchedulesReminderDayBefore(t *testing.T) {
	date := time.Now().AddDate(0, 0, 7).Truncate(time.Hour)
	booking := newBooking(repository.StatusPending, date)
	repo := &fakeRepo{bookings: map[uuid.UUID]repository.Booking{booking.ID: booking}}
	sched := &fakeScheduler{}

	svc := newTestService(repo, &recordingBus{}, sched)

	if _, err := svc.UpdateStatus(context.Background(), booking.ID, repository.StatusApproved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	scheduled := sched.scheduled()
	if len(scheduled) != 1 {
		t.Fatalf("expected one reminder, got %d", len(scheduled))
	}
	if want := date.Add(-24 * time.Hour); !scheduled[0].Equal(want) {
		t.Fatalf("expected reminder at %v, got %v", want, scheduled[0])
	}
}

func TestApprovalWithinLeadWindowSkipsReminder(t *testing.T) {
	booking := newBooking(repository.StatusPending, time.Now().Add(6*time.Hour))
	repo := &fakeRepo{bookings: map[uuid.UUID]repository.Booking{booking.ID: booking}}
	sched := &fakeScheduler{}

	svc := newTestService(repo, &recordingBus{}, sched)

	if _, err := svc.UpdateStatus(context.Background(), booking.ID, repository.StatusApproved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sched.scheduled()) != 0 {
		t.Fatal("expected no reminder inside the 24h lead window")
	}
}

func TestCancellationSchedulesNoReminder(t *testing.T) {
	booking := newBooking(repository.StatusPending, time.Now().AddDate(0, 0, 7))
	repo := &fakeRepo{bookings: map[uuid.UUID]repository.Booking{booking.ID: booking}}
	sched := &fakeScheduler{}

	svc := newTestService(repo, &recordingBus{}, sched)

	if _, err := svc.UpdateStatus(context.Background(), booking.ID, repository.StatusCancelled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sched.scheduled()) != 0 {
		t.Fatal("expected no reminder for a cancellation")
	}
}

func TestFormatPhoneNormalizesToE164(t *testing.T) {
	if got := formatPhone("9841234567", "NP"); got != "+9779841234567" {
		t.Fatalf("expected E.164 form, got %q", got)
	}
	// Garbage passes through untouched.
	if got := formatPhone("not-a-number", "NP"); got != "not-a-number" {
		t.Fatalf("expected pass-through, got %q", got)
	}
	if got := formatPhone("", "NP"); got != "" {
		t.Fatalf("expected empty pass-through, got %q", got)
	}
}
