package handlers_test

import (
	"context"
	"time"

	"medibook/models"
	"medibook/services/storage"

	"github.com/stretchr/testify/mock"
)

type mockAppointmentService struct {
	mock.Mock
}

func dtoOrNil(args mock.Arguments) (*models.AppointmentDTO, error) {
	if a := args.Get(0); a != nil {
		return a.(*models.AppointmentDTO), args.Error(1)
	}
	return nil, args.Error(1)
}

func dtoList(args mock.Arguments) ([]models.AppointmentDTO, error) {
	if a := args.Get(0); a != nil {
		return a.([]models.AppointmentDTO), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAppointmentService) CreateAppointment(ctx context.Context, caller models.Caller, req models.CreateAppointmentRequest) (*models.AppointmentDTO, error) {
	return dtoOrNil(m.Called(ctx, caller, req))
}

func (m *mockAppointmentService) UpdateStatus(ctx context.Context, caller models.Caller, id, statusName string) (bool, error) {
	args := m.Called(ctx, caller, id, statusName)
	return args.Bool(0), args.Error(1)
}

func (m *mockAppointmentService) GetTakenSlots(ctx context.Context, doctorID string, date time.Time) ([]string, error) {
	args := m.Called(ctx, doctorID, date)
	if a := args.Get(0); a != nil {
		return a.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAppointmentService) IsSlotAvailable(ctx context.Context, doctorID string, dateTime time.Time) (bool, error) {
	args := m.Called(ctx, doctorID, dateTime)
	return args.Bool(0), args.Error(1)
}

func (m *mockAppointmentService) GetByID(ctx context.Context, id string) (*models.AppointmentDTO, error) {
	return dtoOrNil(m.Called(ctx, id))
}

func (m *mockAppointmentService) GetDoctorAppointments(ctx context.Context, doctorID string) ([]models.AppointmentDTO, error) {
	return dtoList(m.Called(ctx, doctorID))
}

func (m *mockAppointmentService) GetPatientAppointments(ctx context.Context, patientID string) ([]models.AppointmentDTO, error) {
	return dtoList(m.Called(ctx, patientID))
}

func (m *mockAppointmentService) GetDoctorDashboard(ctx context.Context, doctorID string) (*models.DoctorDashboard, error) {
	args := m.Called(ctx, doctorID)
	if a := args.Get(0); a != nil {
		return a.(*models.DoctorDashboard), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAppointmentService) GetAll(ctx context.Context) ([]models.AppointmentDTO, error) {
	return dtoList(m.Called(ctx))
}

func (m *mockAppointmentService) GetByStatus(ctx context.Context, statusName string) ([]models.AppointmentDTO, error) {
	return dtoList(m.Called(ctx, statusName))
}

func (m *mockAppointmentService) GetByDateRange(ctx context.Context, from, to time.Time) ([]models.AppointmentDTO, error) {
	return dtoList(m.Called(ctx, from, to))
}

func (m *mockAppointmentService) AdminUpdateStatus(ctx context.Context, id, statusName string) (*models.AppointmentDTO, error) {
	return dtoOrNil(m.Called(ctx, id, statusName))
}

func (m *mockAppointmentService) GetAdminStats(ctx context.Context) (*models.AdminAppointmentStats, error) {
	args := m.Called(ctx)
	if a := args.Get(0); a != nil {
		return a.(*models.AdminAppointmentStats), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockReviewService struct {
	mock.Mock
}

func reviewOrNil(args mock.Arguments) (*models.ReviewDTO, error) {
	if a := args.Get(0); a != nil {
		return a.(*models.ReviewDTO), args.Error(1)
	}
	return nil, args.Error(1)
}

func reviewList(args mock.Arguments) ([]models.ReviewDTO, error) {
	if a := args.Get(0); a != nil {
		return a.([]models.ReviewDTO), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewService) CreateReview(ctx context.Context, caller models.Caller, req models.ReviewRequest) (*models.ReviewDTO, error) {
	return reviewOrNil(m.Called(ctx, caller, req))
}

func (m *mockReviewService) UpdateReview(ctx context.Context, caller models.Caller, id string, req models.ReviewRequest) (*models.ReviewDTO, error) {
	return reviewOrNil(m.Called(ctx, caller, id, req))
}

func (m *mockReviewService) DeleteReview(ctx context.Context, caller models.Caller, id string) error {
	return m.Called(ctx, caller, id).Error(0)
}

func (m *mockReviewService) GetDoctorReviews(ctx context.Context, doctorID string) ([]models.ReviewDTO, error) {
	return reviewList(m.Called(ctx, doctorID))
}

func (m *mockReviewService) GetPatientReviews(ctx context.Context, patientID string) ([]models.ReviewDTO, error) {
	return reviewList(m.Called(ctx, patientID))
}

func (m *mockReviewService) GetDoctorRatingSummary(ctx context.Context, doctorID string) (*models.DoctorRatingSummary, error) {
	args := m.Called(ctx, doctorID)
	if a := args.Get(0); a != nil {
		return a.(*models.DoctorRatingSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewService) GetAllReviews(ctx context.Context) ([]models.ReviewDTO, error) {
	return reviewList(m.Called(ctx))
}

type mockUserService struct {
	mock.Mock
}

func profileOrNil(args mock.Arguments) (*models.UserProfileDTO, error) {
	if a := args.Get(0); a != nil {
		return a.(*models.UserProfileDTO), args.Error(1)
	}
	return nil, args.Error(1)
}

func profileList(args mock.Arguments) ([]models.UserProfileDTO, error) {
	if a := args.Get(0); a != nil {
		return a.([]models.UserProfileDTO), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) Register(ctx context.Context, req models.RegisterUserRequest, photo *storage.File) (*models.UserProfileDTO, error) {
	return profileOrNil(m.Called(ctx, req, photo))
}

func (m *mockUserService) GetMe(ctx context.Context, caller models.Caller) (*models.UserProfileDTO, error) {
	return profileOrNil(m.Called(ctx, caller))
}

func (m *mockUserService) UpdateProfile(ctx context.Context, id string, req models.UpdateProfileRequest) (*models.UserProfileDTO, error) {
	return profileOrNil(m.Called(ctx, id, req))
}

func (m *mockUserService) UpdateProfilePhoto(ctx context.Context, id string, photo *storage.File) (*models.UserProfileDTO, error) {
	return profileOrNil(m.Called(ctx, id, photo))
}

func (m *mockUserService) GetUser(ctx context.Context, id string) (*models.PublicUserDTO, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*models.PublicUserDTO), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) ListDoctors(ctx context.Context, speciality string) ([]models.PublicUserDTO, error) {
	args := m.Called(ctx, speciality)
	if a := args.Get(0); a != nil {
		return a.([]models.PublicUserDTO), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) GetAllUsers(ctx context.Context) ([]models.UserProfileDTO, error) {
	return profileList(m.Called(ctx))
}

func (m *mockUserService) GetUsersByRole(ctx context.Context, roleName string) ([]models.UserProfileDTO, error) {
	return profileList(m.Called(ctx, roleName))
}

func (m *mockUserService) UpdateUserProfileStatus(ctx context.Context, id string, complete bool) (*models.UserProfileDTO, error) {
	return profileOrNil(m.Called(ctx, id, complete))
}

func (m *mockUserService) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserService) GetPlatformSummary(ctx context.Context) (*models.PlatformSummary, error) {
	args := m.Called(ctx)
	if a := args.Get(0); a != nil {
		return a.(*models.PlatformSummary), args.Error(1)
	}
	return nil, args.Error(1)
}
