package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medibook/database/repository"
	appointmentRepo "medibook/database/repository/appointment"
	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/services/tasks"
	"medibook/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAppointmentService implements AppointmentService.
type DefaultAppointmentService struct {
	Repo appointmentRepo.AppointmentRepository
	// Users is optional; when set, bookings are checked against the doctor's account.
	Users    userRepo.UserRepository
	Redis    *redis.Client
	Reminder tasks.Reminder
	Location *time.Location
	CacheTTL time.Duration
	Now      func() time.Time
	Logger   *zap.Logger
}

func NewAppointmentService(repo appointmentRepo.AppointmentRepository, users userRepo.UserRepository, rdb *redis.Client, reminder tasks.Reminder, loc *time.Location, cacheTTL time.Duration, logger *zap.Logger) *DefaultAppointmentService {
	if reminder == nil {
		reminder = tasks.NoopReminder{}
	}
	return &DefaultAppointmentService{
		Repo:     repo,
		Users:    users,
		Redis:    rdb,
		Reminder: reminder,
		Location: loc,
		CacheTTL: cacheTTL,
		Now:      time.Now,
		Logger:   logger,
	}
}

func (s *DefaultAppointmentService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *DefaultAppointmentService) loc() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

// CreateAppointment books a PENDING appointment. The slot check and insert run
// under a short Redis lock on (doctor, dateTime) when Redis is reachable.
func (s *DefaultAppointmentService) CreateAppointment(ctx context.Context, caller models.Caller, req models.CreateAppointmentRequest) (*models.AppointmentDTO, error) {
	req.DoctorID = strings.TrimSpace(req.DoctorID)
	if caller.Has(models.RolePatient) && !caller.IsAdmin() {
		req.PatientID = caller.ID
	}
	if req.DoctorID == "" || strings.TrimSpace(req.PatientID) == "" || req.DateTime.IsZero() {
		return nil, fmt.Errorf("%w: doctorId, patientId and dateTime are required", ErrInvalidInput)
	}
	if req.DoctorID == req.PatientID {
		return nil, fmt.Errorf("%w: doctor and patient must differ", ErrInvalidInput)
	}

	if err := s.checkDoctor(ctx, req.DoctorID); err != nil {
		return nil, err
	}

	dateTime := req.DateTime.UTC()
	lockKey := fmt.Sprintf("%s%s:%d", utils.SlotLockPrefix, req.DoctorID, dateTime.Unix())
	acquired, release, err := utils.AcquireLock(ctx, s.Redis, lockKey, utils.SlotLockTTL)
	if err != nil {
		s.Logger.Warn("Slot lock unavailable, checking slot without lock", zap.String("key", lockKey), zap.Error(err))
	} else if !acquired {
		return nil, ErrSlotTaken
	}
	defer release()

	taken, err := s.Repo.ExistsActiveByDoctorIDAndDateTime(ctx, req.DoctorID, dateTime)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	appt := &models.Appointment{
		ID:                   uuid.New().String(),
		PatientID:            req.PatientID,
		DoctorID:             req.DoctorID,
		DateTime:             dateTime,
		Status:               models.StatusPending,
		Description:          strings.TrimSpace(req.Description),
		PaymentTransactionID: req.PaymentTransactionID,
	}
	if err := s.Repo.Create(ctx, appt); err != nil {
		return nil, err
	}
	s.Logger.Info("Appointment created",
		zap.String("appointmentId", appt.ID),
		zap.String("doctorId", appt.DoctorID),
		zap.String("patientId", appt.PatientID),
		zap.Time("dateTime", appt.DateTime))

	s.invalidateDashboard(ctx, appt.DoctorID)
	if err := s.Reminder.Schedule(ctx, appt); err != nil {
		s.Logger.Warn("Failed to schedule reminder", zap.String("appointmentId", appt.ID), zap.Error(err))
	}

	dto := appt.ToDTO()
	return &dto, nil
}

func (s *DefaultAppointmentService) checkDoctor(ctx context.Context, doctorID string) error {
	if s.Users == nil {
		return nil
	}
	doctor, err := s.Users.GetByID(ctx, doctorID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: unknown doctor %s", ErrDoctorUnavailable, doctorID)
	}
	if err != nil {
		return err
	}
	if doctor.Role != models.RoleDoctor || doctor.AccountStatus == models.AccountSuspended {
		return ErrDoctorUnavailable
	}
	return nil
}

// UpdateStatus sets an appointment's status by name. Any transition is allowed
// for the appointment's doctor and admins; its patient may only cancel.
func (s *DefaultAppointmentService) UpdateStatus(ctx context.Context, caller models.Caller, id, statusName string) (bool, error) {
	status, err := models.ParseAppointmentStatus(statusName)
	if err != nil {
		return false, err
	}

	appt, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return false, ErrAppointmentNotFound
	}
	if err != nil {
		return false, err
	}
	if !canChangeStatus(caller, appt, status) {
		s.Logger.Warn("Status change denied",
			zap.String("appointmentId", appt.ID),
			zap.String("callerId", caller.ID),
			zap.String("to", string(status)))
		return false, ErrForbidden
	}

	matched, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return false, err
	}
	if matched == 0 {
		return false, ErrAppointmentNotFound
	}

	s.afterStatusChange(ctx, appt, status)
	return true, nil
}

func canChangeStatus(caller models.Caller, appt *models.Appointment, status models.AppointmentStatus) bool {
	switch {
	case caller.IsAdmin():
		return true
	case caller.ID != "" && caller.ID == appt.DoctorID && caller.Has(models.RoleDoctor):
		return true
	case caller.ID != "" && caller.ID == appt.PatientID && caller.Has(models.RolePatient):
		return status == models.StatusCancelled
	}
	return false
}

func (s *DefaultAppointmentService) afterStatusChange(ctx context.Context, appt *models.Appointment, status models.AppointmentStatus) {
	s.Logger.Info("Appointment status updated",
		zap.String("appointmentId", appt.ID),
		zap.String("from", string(appt.Status)),
		zap.String("to", string(status)))

	s.invalidateDashboard(ctx, appt.DoctorID)
	if status == models.StatusCancelled || status == models.StatusCompleted {
		if err := s.Reminder.Cancel(ctx, appt.ID); err != nil {
			s.Logger.Warn("Failed to cancel reminder", zap.String("appointmentId", appt.ID), zap.Error(err))
		}
		return
	}
	if appt.Status == models.StatusCancelled || appt.Status == models.StatusCompleted {
		reopened := *appt
		reopened.Status = status
		if err := s.Reminder.Schedule(ctx, &reopened); err != nil {
			s.Logger.Warn("Failed to reschedule reminder", zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}
}

func (s *DefaultAppointmentService) GetByID(ctx context.Context, id string) (*models.AppointmentDTO, error) {
	appt, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, err
	}
	dto := appt.ToDTO()
	return &dto, nil
}

func (s *DefaultAppointmentService) GetDoctorAppointments(ctx context.Context, doctorID string) ([]models.AppointmentDTO, error) {
	appts, err := s.Repo.GetByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return models.AppointmentDTOs(appts), nil
}

func (s *DefaultAppointmentService) GetPatientAppointments(ctx context.Context, patientID string) ([]models.AppointmentDTO, error) {
	appts, err := s.Repo.GetByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return models.AppointmentDTOs(appts), nil
}
