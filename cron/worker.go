package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medibook/config"
	"medibook/database/repository"
	appointmentRepo "medibook/database/repository/appointment"
	"medibook/models"
	"medibook/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueRedisOpt returns the asynq connection for the reminder queue database.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitReminderWorker runs the reminder worker in the background and returns the
// server so the caller can shut it down.
func InitReminderWorker(ctx context.Context, repo appointmentRepo.AppointmentRepository, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAppointmentReminder, HandleAppointmentReminder(repo, logger))

	go monitorRedisConnection(ctx, logger)

	go func() {
		logger.Info("Starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("Reminder worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Reminder worker gave up; reminders will queue until restart")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

// HandleAppointmentReminder delivers a due reminder. Appointments that were
// cancelled, completed or deleted in the meantime are skipped without retry.
func HandleAppointmentReminder(repo appointmentRepo.AppointmentRepository, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			return fmt.Errorf("invalid reminder payload: %v: %w", err, asynq.SkipRetry)
		}

		appt, err := repo.GetByID(ctx, p.AppointmentID)
		if errors.Is(err, repository.ErrNotFound) {
			logger.Info("Reminder for deleted appointment skipped", zap.String("appointmentId", p.AppointmentID))
			return nil
		}
		if err != nil {
			return err
		}
		if appt.Status == models.StatusCancelled || appt.Status == models.StatusCompleted {
			logger.Info("Reminder skipped", zap.String("appointmentId", appt.ID), zap.String("status", string(appt.Status)))
			return nil
		}

		logger.Info("Appointment reminder",
			zap.String("appointmentId", appt.ID),
			zap.String("patientId", appt.PatientID),
			zap.String("doctorId", appt.DoctorID),
			zap.Time("dateTime", appt.DateTime))
		return nil
	}
}

// monitorRedisConnection pings the queue database periodically to surface
// connection loss at runtime.
func monitorRedisConnection(ctx context.Context, logger *zap.Logger) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer client.Close()

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Reminder queue Redis connection lost", zap.Error(err))
			}
		}
	}
}
