package scheduler

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"

	bookingrepo "booking_admin_backend/internal/bookings/repository"
	"booking_admin_backend/internal/notification/email"
	"booking_admin_backend/platform/apperr"
	"booking_admin_backend/platform/config"
	"booking_admin_backend/platform/logger"
)

// Worker consumes scheduled tasks from the queue. The reminder handler
// re-checks booking state at delivery time: bookings cancelled after
// the reminder was enqueued stay silent.
type Worker struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	bookings bookingrepo.BookingReader
	sender   email.Sender
	log      *logger.Logger
}

// NewWorker creates the asynq worker. The sender may be nil when email
// is disabled; reminders are then logged and dropped.
func NewWorker(cfg config.RedisConfig, pool *pgxpool.Pool, sender email.Sender, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:   server,
		mux:      mux,
		bookings: bookingrepo.New(pool),
		sender:   sender,
		log:      log,
	}

	mux.HandleFunc(TaskBookingReminder, w.handleBookingReminder)

	return w, nil
}

// Run serves the queue until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

func (w *Worker) handleBookingReminder(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseBookingReminderPayload(task)
	if err != nil {
		return err
	}

	bookingID, err := uuid.Parse(payload.BookingID)
	if err != nil {
		return err
	}

	booking, err := w.bookings.GetByID(ctx, bookingID)
	if apperr.GetKind(err) == apperr.KindNotFound {
		w.log.Info("reminder skipped, booking deleted", "booking_id", bookingID)
		return nil
	}
	if err != nil {
		return err
	}

	if booking.Status != bookingrepo.StatusApproved {
		w.log.Info("reminder skipped, booking no longer approved",
			"booking_id", bookingID, "status", booking.Status)
		return nil
	}

	if w.sender == nil {
		w.log.Info("reminder skipped, email disabled", "booking_id", bookingID)
		return nil
	}

	err = w.sender.SendBookingReminderEmail(ctx, booking.Email, email.BookingReminderData{
		Name:    booking.Name,
		Service: booking.Service,
		Date:    booking.Date.Format("Monday, 2 January 2006"),
		Address: booking.Address,
	})
	if err != nil {
		w.log.Error("failed to send booking reminder", "booking_id", bookingID, "error", err)
		return err
	}

	w.log.Info("booking reminder sent", "booking_id", bookingID)
	return nil
}
