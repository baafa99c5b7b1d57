package user

import (
	"context"

	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/services/identity"
	"medibook/services/storage"

	"go.uber.org/zap"
)

type UserService interface {
	// Registration and self-service
	Register(ctx context.Context, req models.RegisterUserRequest, photo *storage.File) (*models.UserProfileDTO, error)
	GetMe(ctx context.Context, caller models.Caller) (*models.UserProfileDTO, error)
	UpdateProfile(ctx context.Context, id string, req models.UpdateProfileRequest) (*models.UserProfileDTO, error)
	UpdateProfilePhoto(ctx context.Context, id string, photo *storage.File) (*models.UserProfileDTO, error)

	// Public lookups
	GetUser(ctx context.Context, id string) (*models.PublicUserDTO, error)
	ListDoctors(ctx context.Context, speciality string) ([]models.PublicUserDTO, error)

	// Admin
	GetAllUsers(ctx context.Context) ([]models.UserProfileDTO, error)
	GetUsersByRole(ctx context.Context, roleName string) ([]models.UserProfileDTO, error)
	UpdateUserProfileStatus(ctx context.Context, id string, complete bool) (*models.UserProfileDTO, error)
	DeleteUser(ctx context.Context, id string) error
	GetPlatformSummary(ctx context.Context) (*models.PlatformSummary, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Identity identity.Provider
	Storage  storage.StorageService
	Logger   *zap.Logger
}

func NewUserService(repo userRepo.UserRepository, idp identity.Provider, store storage.StorageService, logger *zap.Logger) *DefaultUserService {
	return &DefaultUserService{Repo: repo, Identity: idp, Storage: store, Logger: logger}
}
