package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medibook/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeAppointmentReminder = "appointment:reminder"

// NewAppointmentReminderTask builds the reminder task. The task ID is the
// appointment ID so a pending reminder can be found and removed.
func NewAppointmentReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAppointmentReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(payload.AppointmentID),
		asynq.MaxRetry(3),
	}
	return task, opts, nil
}

// Reminder schedules and cancels appointment reminders.
type Reminder interface {
	Schedule(ctx context.Context, appt *models.Appointment) error
	Cancel(ctx context.Context, appointmentID string) error
}

// AsynqReminder enqueues reminders on the asynq queue.
type AsynqReminder struct {
	client    *asynq.Client
	inspector *asynq.Inspector
	lead      time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

func NewAsynqReminder(opt asynq.RedisClientOpt, lead time.Duration, logger *zap.Logger) *AsynqReminder {
	return &AsynqReminder{
		client:    asynq.NewClient(opt),
		inspector: asynq.NewInspector(opt),
		lead:      lead,
		logger:    logger,
		now:       time.Now,
	}
}

// Schedule enqueues a reminder lead before the appointment. Reminders whose
// fire time has already passed are skipped.
func (r *AsynqReminder) Schedule(ctx context.Context, appt *models.Appointment) error {
	fireAt := appt.DateTime.Add(-r.lead)
	if !fireAt.After(r.now()) {
		r.logger.Debug("Reminder time already passed, skipping", zap.String("appointmentId", appt.ID))
		return nil
	}

	task, opts, err := NewAppointmentReminderTask(models.ReminderPayload{
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		DoctorID:      appt.DoctorID,
		DateTime:      appt.DateTime,
	}, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}

	if _, err := r.client.EnqueueContext(ctx, task, opts...); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	r.logger.Info("Reminder scheduled", zap.String("appointmentId", appt.ID), zap.Time("fireAt", fireAt))
	return nil
}

// Cancel removes a pending reminder. A missing task is not an error.
func (r *AsynqReminder) Cancel(ctx context.Context, appointmentID string) error {
	err := r.inspector.DeleteTask("default", appointmentID)
	if err != nil && !errors.Is(err, asynq.ErrTaskNotFound) && !errors.Is(err, asynq.ErrQueueNotFound) {
		return fmt.Errorf("failed to cancel reminder: %w", err)
	}
	return nil
}

func (r *AsynqReminder) Close() error {
	if err := r.inspector.Close(); err != nil {
		return err
	}
	return r.client.Close()
}

// NoopReminder is used when reminders are disabled.
type NoopReminder struct{}

func (NoopReminder) Schedule(context.Context, *models.Appointment) error { return nil }
func (NoopReminder) Cancel(context.Context, string) error { return nil }
