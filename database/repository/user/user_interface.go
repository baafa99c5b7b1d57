package userRepo

import (
	"context"

	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user profile data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.UserData) error
	// GetByID retrieves a user by identity-provider subject.
	GetByID(ctx context.Context, id string) (*models.UserData, error)
	GetAll(ctx context.Context) ([]models.UserData, error)
	GetByRole(ctx context.Context, role models.Role) ([]models.UserData, error)
	// GetDoctorsBySpeciality lists doctors; an empty speciality matches all and
	// activeOnly hides suspended accounts.
	GetDoctorsBySpeciality(ctx context.Context, speciality string, activeOnly bool) ([]models.UserData, error)
	// UpdateSetDocument applies a $set with the given fields.
	UpdateSetDocument(ctx context.Context, id string, setDoc bson.M) error
	Delete(ctx context.Context, id string) error
	// CountByRole counts users per role; every role is present in the result.
	CountByRole(ctx context.Context) (map[models.Role]int64, error)
	// CountIncompleteProfiles counts users with profileComplete=false.
	CountIncompleteProfiles(ctx context.Context) (int64, error)
}
