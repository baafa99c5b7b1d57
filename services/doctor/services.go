package doctor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"medibook/database/repository"
	"medibook/models"
	"medibook/services/storage"

	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func validateService(req *models.HealthcareServiceRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func (s *DefaultDoctorService) CreateHealthcareService(ctx context.Context, caller models.Caller, req models.HealthcareServiceRequest, image *storage.File) (*models.HealthcareServiceDTO, error) {
	if err := validateService(&req); err != nil {
		return nil, err
	}

	svc := &models.HealthcareService{
		ID:              uuid.New().String(),
		DoctorID:        caller.ID,
		Name:            req.Name,
		Description:     strings.TrimSpace(req.Description),
		Category:        req.Category,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
	}
	if image != nil {
		url, err := s.Storage.Upload(ctx, image.Reader, image.Filename, "services")
		if err != nil {
			return nil, fmt.Errorf("failed to store service image: %w", err)
		}
		svc.ImageURL = url
	}

	if err := s.Services.Create(ctx, svc); err != nil {
		if svc.ImageURL != "" {
			_ = s.Storage.Delete(ctx, svc.ImageURL)
		}
		return nil, err
	}
	s.Logger.Info("Healthcare service created", zap.String("serviceId", svc.ID), zap.String("doctorId", svc.DoctorID))
	dto := svc.ToDTO()
	return &dto, nil
}

func (s *DefaultDoctorService) loadService(ctx context.Context, id string) (*models.HealthcareService, error) {
	svc, err := s.Services.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrServiceNotFound
	}
	return svc, err
}

func (s *DefaultDoctorService) GetHealthcareService(ctx context.Context, id string) (*models.HealthcareServiceDTO, error) {
	svc, err := s.loadService(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := svc.ToDTO()
	return &dto, nil
}

func (s *DefaultDoctorService) ListDoctorServices(ctx context.Context, doctorID string) ([]models.HealthcareServiceDTO, error) {
	services, err := s.Services.GetByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return models.HealthcareServiceDTOs(services), nil
}

// ListServices lists every service, or those in category when it is set.
func (s *DefaultDoctorService) ListServices(ctx context.Context, category string) ([]models.HealthcareServiceDTO, error) {
	category = strings.TrimSpace(category)
	var (
		services []models.HealthcareService
		err      error
	)
	if category == "" {
		services, err = s.Services.GetAll(ctx)
	} else {
		services, err = s.Services.GetByCategory(ctx, category)
	}
	if err != nil {
		return nil, err
	}
	return models.HealthcareServiceDTOs(services), nil
}

func (s *DefaultDoctorService) UpdateHealthcareService(ctx context.Context, caller models.Caller, id string, req models.HealthcareServiceRequest) (*models.HealthcareServiceDTO, error) {
	if err := validateService(&req); err != nil {
		return nil, err
	}
	svc, err := s.loadService(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManage(caller, svc.DoctorID) {
		return nil, ErrForbidden
	}

	svc.Name = req.Name
	svc.Description = strings.TrimSpace(req.Description)
	svc.Category = req.Category
	svc.DurationMinutes = req.DurationMinutes
	svc.Price = req.Price
	if err := s.Services.Update(ctx, svc); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	dto := svc.ToDTO()
	return &dto, nil
}

// DeleteHealthcareService removes the service; its image is deleted best-effort.
func (s *DefaultDoctorService) DeleteHealthcareService(ctx context.Context, caller models.Caller, id string) error {
	svc, err := s.loadService(ctx, id)
	if err != nil {
		return err
	}
	if !canManage(caller, svc.DoctorID) {
		return ErrForbidden
	}
	if err := s.Services.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrServiceNotFound
		}
		return err
	}
	if svc.ImageURL != "" {
		if err := s.Storage.Delete(ctx, svc.ImageURL); err != nil {
			s.Logger.Warn("Service image not removed", zap.String("serviceId", id), zap.Error(err))
		}
	}
	return nil
}
