package doctor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"medibook/database/repository"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func (s *DefaultDoctorService) GetAllDoctors(ctx context.Context) ([]models.UserProfileDTO, error) {
	doctors, err := s.Users.GetByRole(ctx, models.RoleDoctor)
	if err != nil {
		return nil, err
	}
	return models.UserProfileDTOs(doctors), nil
}

// GetDoctorsBySpeciality includes suspended doctors.
func (s *DefaultDoctorService) GetDoctorsBySpeciality(ctx context.Context, speciality string) ([]models.UserProfileDTO, error) {
	doctors, err := s.Users.GetDoctorsBySpeciality(ctx, strings.TrimSpace(speciality), false)
	if err != nil {
		return nil, err
	}
	return models.UserProfileDTOs(doctors), nil
}

// UpdateDoctorStatus activates or suspends a doctor account.
func (s *DefaultDoctorService) UpdateDoctorStatus(ctx context.Context, id, statusName string) (*models.UserProfileDTO, error) {
	status, err := models.ParseAccountStatus(statusName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	doctor, err := s.Users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		return nil, err
	}
	if doctor.Role != models.RoleDoctor {
		return nil, ErrDoctorNotFound
	}

	if err := s.Users.UpdateSetDocument(ctx, id, bson.M{"accountStatus": status}); err != nil {
		return nil, err
	}
	s.Logger.Info("Doctor account status changed", zap.String("doctorId", id), zap.String("status", string(status)))
	doctor.AccountStatus = status
	dto := doctor.ToProfileDTO()
	return &dto, nil
}

func (s *DefaultDoctorService) GetServiceStats(ctx context.Context) (*models.ServiceStats, error) {
	byCategory, err := s.Services.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, c := range byCategory {
		total += c
	}
	return &models.ServiceStats{TotalServices: total, ByCategory: byCategory}, nil
}
