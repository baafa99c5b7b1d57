package review

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"medibook/database/repository"
	reviewRepo "medibook/database/repository/review"
	userRepo "medibook/database/repository/user"
	"medibook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, caller models.Caller, req models.ReviewRequest) (*models.ReviewDTO, error)
	UpdateReview(ctx context.Context, caller models.Caller, id string, req models.ReviewRequest) (*models.ReviewDTO, error)
	DeleteReview(ctx context.Context, caller models.Caller, id string) error
	GetDoctorReviews(ctx context.Context, doctorID string) ([]models.ReviewDTO, error)
	GetPatientReviews(ctx context.Context, patientID string) ([]models.ReviewDTO, error)
	GetDoctorRatingSummary(ctx context.Context, doctorID string) (*models.DoctorRatingSummary, error)
	GetAllReviews(ctx context.Context) ([]models.ReviewDTO, error)
}

type DefaultReviewService struct {
	Repo   reviewRepo.ReviewRepository
	Users  userRepo.UserRepository
	Logger *zap.Logger
}

func NewReviewService(repo reviewRepo.ReviewRepository, users userRepo.UserRepository, logger *zap.Logger) *DefaultReviewService {
	return &DefaultReviewService{Repo: repo, Users: users, Logger: logger}
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}
	return nil
}

func (s *DefaultReviewService) CreateReview(ctx context.Context, caller models.Caller, req models.ReviewRequest) (*models.ReviewDTO, error) {
	req.DoctorID = strings.TrimSpace(req.DoctorID)
	if req.DoctorID == "" {
		return nil, fmt.Errorf("%w: doctorId is required", ErrInvalidInput)
	}
	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}

	doctor, err := s.Users.GetByID(ctx, req.DoctorID)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && doctor.Role != models.RoleDoctor) {
		return nil, ErrUnknownDoctor
	}
	if err != nil {
		return nil, err
	}

	review := &models.DoctorReview{
		ID:        uuid.New().String(),
		PatientID: caller.ID,
		DoctorID:  req.DoctorID,
		Rating:    req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
	}
	if err := s.Repo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrReviewExists
		}
		return nil, err
	}
	s.Logger.Info("Review posted", zap.String("reviewId", review.ID), zap.String("doctorId", review.DoctorID))
	dto := review.ToDTO()
	return &dto, nil
}

func (s *DefaultReviewService) load(ctx context.Context, id string) (*models.DoctorReview, error) {
	review, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrReviewNotFound
	}
	return review, err
}

// UpdateReview changes rating and comment; only the author may do so.
func (s *DefaultReviewService) UpdateReview(ctx context.Context, caller models.Caller, id string, req models.ReviewRequest) (*models.ReviewDTO, error) {
	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}
	review, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if review.PatientID != caller.ID {
		return nil, ErrForbidden
	}

	review.Rating = req.Rating
	review.Comment = strings.TrimSpace(req.Comment)
	if err := s.Repo.Update(ctx, review); err != nil {
		return nil, err
	}
	dto := review.ToDTO()
	return &dto, nil
}

func (s *DefaultReviewService) DeleteReview(ctx context.Context, caller models.Caller, id string) error {
	review, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if review.PatientID != caller.ID && !caller.IsAdmin() {
		return ErrForbidden
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}

func (s *DefaultReviewService) GetDoctorReviews(ctx context.Context, doctorID string) ([]models.ReviewDTO, error) {
	reviews, err := s.Repo.GetByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return models.ReviewDTOs(reviews), nil
}

func (s *DefaultReviewService) GetPatientReviews(ctx context.Context, patientID string) ([]models.ReviewDTO, error) {
	reviews, err := s.Repo.GetByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return models.ReviewDTOs(reviews), nil
}

// GetDoctorRatingSummary returns the average rounded to one decimal.
func (s *DefaultReviewService) GetDoctorRatingSummary(ctx context.Context, doctorID string) (*models.DoctorRatingSummary, error) {
	avg, count, err := s.Repo.AverageForDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return &models.DoctorRatingSummary{
		DoctorID:      doctorID,
		AverageRating: math.Round(avg*10) / 10,
		ReviewCount:   count,
	}, nil
}

func (s *DefaultReviewService) GetAllReviews(ctx context.Context) ([]models.ReviewDTO, error) {
	reviews, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return models.ReviewDTOs(reviews), nil
}
