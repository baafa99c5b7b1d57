package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medibook/database/repository"
	"medibook/models"
	"medibook/utils"
)

func (s *DefaultAppointmentService) GetAll(ctx context.Context) ([]models.AppointmentDTO, error) {
	appts, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return models.AppointmentDTOs(appts), nil
}

func (s *DefaultAppointmentService) GetByStatus(ctx context.Context, statusName string) ([]models.AppointmentDTO, error) {
	status, err := models.ParseAppointmentStatus(statusName)
	if err != nil {
		return nil, err
	}
	appts, err := s.Repo.GetByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return models.AppointmentDTOs(appts), nil
}

// GetByDateRange lists appointments in [from, to).
func (s *DefaultAppointmentService) GetByDateRange(ctx context.Context, from, to time.Time) ([]models.AppointmentDTO, error) {
	if !from.Before(to) {
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}
	appts, err := s.Repo.GetByDateTimeBetween(ctx, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	return models.AppointmentDTOs(appts), nil
}

// AdminUpdateStatus loads, mutates and saves the appointment, returning the updated DTO.
func (s *DefaultAppointmentService) AdminUpdateStatus(ctx context.Context, id, statusName string) (*models.AppointmentDTO, error) {
	status, err := models.ParseAppointmentStatus(statusName)
	if err != nil {
		return nil, err
	}
	appt, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, err
	}

	matched, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrAppointmentNotFound
	}
	s.afterStatusChange(ctx, appt, status)

	appt.Status = status
	appt.UpdatedAt = s.now().UTC()
	dto := appt.ToDTO()
	return &dto, nil
}

// GetAdminStats counts appointments platform-wide.
func (s *DefaultAppointmentService) GetAdminStats(ctx context.Context) (*models.AdminAppointmentStats, error) {
	counts, err := s.Repo.CountByStatus(ctx, "")
	if err != nil {
		return nil, err
	}
	var total int64
	for _, c := range counts {
		total += c
	}

	start, end := utils.DayBounds(s.now(), s.loc())
	today, err := s.Repo.GetByDateTimeBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &models.AdminAppointmentStats{
		TotalAppointments: total,
		StatusCounts:      counts,
		TodayCount:        int64(len(today)),
	}, nil
}
