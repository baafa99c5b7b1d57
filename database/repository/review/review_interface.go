package reviewRepo

import (
	"context"

	"medibook/models"
)

// ReviewRepository defines data access for doctor reviews.
type ReviewRepository interface {
	// Create inserts a review; a second review for the same patient and doctor
	// fails with repository.ErrDuplicate.
	Create(ctx context.Context, review *models.DoctorReview) error
	GetByID(ctx context.Context, id string) (*models.DoctorReview, error)
	GetAll(ctx context.Context) ([]models.DoctorReview, error)
	// GetByDoctorID lists a doctor's reviews, newest first.
	GetByDoctorID(ctx context.Context, doctorID string) ([]models.DoctorReview, error)
	GetByPatientID(ctx context.Context, patientID string) ([]models.DoctorReview, error)
	// Update overwrites rating and comment.
	Update(ctx context.Context, review *models.DoctorReview) error
	Delete(ctx context.Context, id string) error
	// AverageForDoctor returns the mean rating and the review count.
	AverageForDoctor(ctx context.Context, doctorID string) (float64, int64, error)
}
