package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// TaskBookingReminder is the asynq task type for booking reminders.
const TaskBookingReminder = "bookings.reminder"

// BookingReminderPayload identifies the booking to remind about.
type BookingReminderPayload struct {
	BookingID string `json:"bookingId"`
}

// NewBookingReminderTask builds the asynq task for a reminder.
func NewBookingReminderTask(payload BookingReminderPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskBookingReminder, data), nil
}

// ParseBookingReminderPayload decodes a reminder task payload.
func ParseBookingReminderPayload(task *asynq.Task) (BookingReminderPayload, error) {
	var payload BookingReminderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return BookingReminderPayload{}, err
	}
	return payload, nil
}
