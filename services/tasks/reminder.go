package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"lumea/config"
	"lumea/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// ReminderScheduler enqueues appointment reminders at confirmation time.
type ReminderScheduler interface {
	ScheduleBookingReminder(b models.Booking) error
}

// NewReminderTask builds the asynq task for an appointment reminder fired at
// the given time.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler implements ReminderScheduler over the Redis-backed
// reminder queue.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

// NewAsynqReminderScheduler creates a scheduler connected to the reminder
// queue DB.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleBookingReminder enqueues a reminder ahead of the appointment.
// Bookings already inside the lead window get no reminder.
func (s *AsynqReminderScheduler) ScheduleBookingReminder(b models.Booking) error {
	startAt, err := time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.Time, time.Local)
	if err != nil {
		return fmt.Errorf("invalid booking schedule %q %q: %w", b.Date, b.Time, err)
	}

	fireAt := startAt.Add(-time.Duration(config.AppConfig.ReminderLeadMins) * time.Minute)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID:   b.ID,
		UserID:      b.UserID,
		ServiceName: b.ServiceName,
		Date:        b.Date,
		Time:        b.Time,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}
