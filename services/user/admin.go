package user

import (
	"context"
	"errors"
	"fmt"

	"medibook/database/repository"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.UserProfileDTO, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return models.UserProfileDTOs(users), nil
}

func (s *DefaultUserService) GetUsersByRole(ctx context.Context, roleName string) ([]models.UserProfileDTO, error) {
	role, err := models.ParseRole(roleName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	users, err := s.Repo.GetByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	return models.UserProfileDTOs(users), nil
}

// UpdateUserProfileStatus lets an admin override the profile completeness flag.
func (s *DefaultUserService) UpdateUserProfileStatus(ctx context.Context, id string, complete bool) (*models.UserProfileDTO, error) {
	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateSetDocument(ctx, id, bson.M{"profileComplete": complete}); err != nil {
		return nil, err
	}
	user.ProfileComplete = complete
	dto := user.ToProfileDTO()
	return &dto, nil
}

// DeleteUser removes the profile and then the identity-provider account.
func (s *DefaultUserService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if err := s.Identity.DeleteUser(ctx, id); err != nil {
		s.Logger.Warn("Identity user not removed", zap.String("userId", id), zap.Error(err))
	}
	if user.ProfilePhotoURL != "" {
		if err := s.Storage.Delete(ctx, user.ProfilePhotoURL); err != nil {
			s.Logger.Warn("Profile photo not removed", zap.String("userId", id), zap.Error(err))
		}
	}
	s.Logger.Info("User deleted", zap.String("userId", id))
	return nil
}

func (s *DefaultUserService) GetPlatformSummary(ctx context.Context) (*models.PlatformSummary, error) {
	byRole, err := s.Repo.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, c := range byRole {
		total += c
	}

	activeDoctors, err := s.Repo.GetDoctorsBySpeciality(ctx, "", true)
	if err != nil {
		return nil, err
	}
	incomplete, err := s.Repo.CountIncompleteProfiles(ctx)
	if err != nil {
		return nil, err
	}

	return &models.PlatformSummary{
		TotalUsers:         total,
		UsersByRole:        byRole,
		ActiveDoctors:      int64(len(activeDoctors)),
		IncompleteProfiles: incomplete,
	}, nil
}
