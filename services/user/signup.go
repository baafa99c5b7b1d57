package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"medibook/database/repository"
	"medibook/models"
	"medibook/services/identity"
	"medibook/services/storage"

	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// validateRegistration normalizes req, runs the binding rules and then checks
// what the tags cannot express.
func validateRegistration(req *models.RegisterUserRequest) (models.Role, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.ClinicID = strings.TrimSpace(req.ClinicID)
	req.Speciality = strings.TrimSpace(req.Speciality)
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	role, err := models.ParseRole(req.Role)
	if err != nil || role == models.RoleAdmin {
		return "", fmt.Errorf("%w: role must be DOCTOR or PATIENT", ErrInvalidInput)
	}
	if role == models.RoleDoctor && (req.ClinicID == "" || req.Speciality == "") {
		return "", fmt.Errorf("%w: doctors need clinicId and speciality", ErrInvalidInput)
	}
	return role, nil
}

// Register creates the identity-provider account and then the local profile.
// When the profile cannot be stored the identity account is removed again.
func (s *DefaultUserService) Register(ctx context.Context, req models.RegisterUserRequest, photo *storage.File) (*models.UserProfileDTO, error) {
	role, err := validateRegistration(&req)
	if err != nil {
		return nil, err
	}

	subject, err := s.Identity.CreateUser(ctx, identity.UserRegistration{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      string(role),
	})
	if errors.Is(err, identity.ErrIdentityConflict) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}

	user := &models.UserData{
		ID:            subject,
		Role:          role,
		Email:         req.Email,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		PhoneNumber:   strings.TrimSpace(req.PhoneNumber),
		AccountStatus: models.AccountActive,
	}
	if role == models.RoleDoctor {
		user.ClinicID = req.ClinicID
		user.Speciality = req.Speciality
		user.Description = strings.TrimSpace(req.Description)
		user.Diploma = strings.TrimSpace(req.Diploma)
	}
	user.ProfileComplete = user.IsProfileComplete()

	if photo != nil {
		url, err := s.Storage.Upload(ctx, photo.Reader, photo.Filename, "users")
		if err != nil {
			s.Logger.Warn("Profile photo upload failed, registering without photo", zap.String("userId", subject), zap.Error(err))
		} else {
			user.ProfilePhotoURL = url
		}
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		s.compensate(ctx, user)
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.Logger.Info("User registered", zap.String("userId", user.ID), zap.String("role", string(role)))
	dto := user.ToProfileDTO()
	return &dto, nil
}

func (s *DefaultUserService) compensate(ctx context.Context, user *models.UserData) {
	if err := s.Identity.DeleteUser(ctx, user.ID); err != nil {
		s.Logger.Error("Failed to remove identity user after registration failure", zap.String("userId", user.ID), zap.Error(err))
	}
	if user.ProfilePhotoURL != "" {
		if err := s.Storage.Delete(ctx, user.ProfilePhotoURL); err != nil {
			s.Logger.Warn("Failed to remove orphaned profile photo", zap.String("url", user.ProfilePhotoURL), zap.Error(err))
		}
	}
}
