package healthcareRepo

import (
	"context"

	"medibook/models"
)

// HealthcareServiceRepository defines data access for doctor-offered services.
type HealthcareServiceRepository interface {
	Create(ctx context.Context, svc *models.HealthcareService) error
	GetByID(ctx context.Context, id string) (*models.HealthcareService, error)
	GetByDoctorID(ctx context.Context, doctorID string) ([]models.HealthcareService, error)
	GetAll(ctx context.Context) ([]models.HealthcareService, error)
	GetByCategory(ctx context.Context, category string) ([]models.HealthcareService, error)
	// Update overwrites the mutable fields of an existing service.
	Update(ctx context.Context, svc *models.HealthcareService) error
	Delete(ctx context.Context, id string) error
	// CountByCategory groups services by category; uncategorised services count under "".
	CountByCategory(ctx context.Context) (map[string]int64, error)
}
