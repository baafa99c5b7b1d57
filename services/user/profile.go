package user

import (
	"context"
	"errors"
	"strings"

	"medibook/database/repository"
	"medibook/models"
	"medibook/services/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func (s *DefaultUserService) load(ctx context.Context, id string) (*models.UserData, error) {
	user, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func (s *DefaultUserService) GetMe(ctx context.Context, caller models.Caller) (*models.UserProfileDTO, error) {
	user, err := s.load(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	dto := user.ToProfileDTO()
	return &dto, nil
}

// UpdateProfile applies the non-empty fields of req and recomputes profile completeness.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, id string, req models.UpdateProfileRequest) (*models.UserProfileDTO, error) {
	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	apply := func(field string, value string, target *string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		*target = value
		set[field] = value
	}
	apply("firstName", req.FirstName, &user.FirstName)
	apply("lastName", req.LastName, &user.LastName)
	apply("phoneNumber", req.PhoneNumber, &user.PhoneNumber)
	if user.Role == models.RoleDoctor {
		apply("clinicId", req.ClinicID, &user.ClinicID)
		apply("speciality", req.Speciality, &user.Speciality)
		apply("description", req.Description, &user.Description)
		apply("diploma", req.Diploma, &user.Diploma)
	}

	user.ProfileComplete = user.IsProfileComplete()
	set["profileComplete"] = user.ProfileComplete

	if err := s.Repo.UpdateSetDocument(ctx, id, set); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	dto := user.ToProfileDTO()
	return &dto, nil
}

// UpdateProfilePhoto stores the new photo and removes the previous one best-effort.
func (s *DefaultUserService) UpdateProfilePhoto(ctx context.Context, id string, photo *storage.File) (*models.UserProfileDTO, error) {
	if photo == nil {
		return nil, ErrInvalidInput
	}
	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.Storage.Upload(ctx, photo.Reader, photo.Filename, "users")
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateSetDocument(ctx, id, bson.M{"profilePhotoUrl": url}); err != nil {
		return nil, err
	}

	if old := user.ProfilePhotoURL; old != "" {
		if err := s.Storage.Delete(ctx, old); err != nil {
			s.Logger.Warn("Failed to delete previous profile photo", zap.String("url", old), zap.Error(err))
		}
	}
	user.ProfilePhotoURL = url
	dto := user.ToProfileDTO()
	return &dto, nil
}

func (s *DefaultUserService) GetUser(ctx context.Context, id string) (*models.PublicUserDTO, error) {
	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := user.ToPublicDTO()
	return &dto, nil
}

// ListDoctors returns active doctors, optionally filtered by speciality.
func (s *DefaultUserService) ListDoctors(ctx context.Context, speciality string) ([]models.PublicUserDTO, error) {
	doctors, err := s.Repo.GetDoctorsBySpeciality(ctx, strings.TrimSpace(speciality), true)
	if err != nil {
		return nil, err
	}
	return models.PublicUserDTOs(doctors), nil
}
