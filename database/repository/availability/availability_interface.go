package availabilityRepo

import (
	"context"

	"medibook/models"
)

// AvailabilityRepository stores the weekly working windows of doctors.
type AvailabilityRepository interface {
	Create(ctx context.Context, av *models.DoctorAvailability) error
	GetByID(ctx context.Context, id string) (*models.DoctorAvailability, error)
	GetByDoctorID(ctx context.Context, doctorID string) ([]models.DoctorAvailability, error)
	Delete(ctx context.Context, id string) error
}
