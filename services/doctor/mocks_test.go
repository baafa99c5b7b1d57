package doctor

import (
	"context"
	"io"
	"time"

	"medibook/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

type mockServiceRepo struct{ mock.Mock }

func (m *mockServiceRepo) Create(ctx context.Context, svc *models.HealthcareService) error {
	return m.Called(ctx, svc).Error(0)
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id string) (*models.HealthcareService, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*models.HealthcareService), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockServiceRepo) GetByDoctorID(ctx context.Context, doctorID string) ([]models.HealthcareService, error) {
	args := m.Called(ctx, doctorID)
	return args.Get(0).([]models.HealthcareService), args.Error(1)
}

func (m *mockServiceRepo) GetAll(ctx context.Context) ([]models.HealthcareService, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.HealthcareService), args.Error(1)
}

func (m *mockServiceRepo) GetByCategory(ctx context.Context, category string) ([]models.HealthcareService, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]models.HealthcareService), args.Error(1)
}

func (m *mockServiceRepo) Update(ctx context.Context, svc *models.HealthcareService) error {
	return m.Called(ctx, svc).Error(0)
}

func (m *mockServiceRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockServiceRepo) CountByCategory(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]int64), args.Error(1)
}

type mockAvailabilityRepo struct{ mock.Mock }

func (m *mockAvailabilityRepo) Create(ctx context.Context, av *models.DoctorAvailability) error {
	return m.Called(ctx, av).Error(0)
}

func (m *mockAvailabilityRepo) GetByID(ctx context.Context, id string) (*models.DoctorAvailability, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*models.DoctorAvailability), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAvailabilityRepo) GetByDoctorID(ctx context.Context, doctorID string) ([]models.DoctorAvailability, error) {
	args := m.Called(ctx, doctorID)
	return args.Get(0).([]models.DoctorAvailability), args.Error(1)
}

func (m *mockAvailabilityRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *models.UserData) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*models.UserData, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*models.UserData), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetAll(ctx context.Context) ([]models.UserData, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.UserData), args.Error(1)
}

func (m *mockUserRepo) GetByRole(ctx context.Context, role models.Role) ([]models.UserData, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]models.UserData), args.Error(1)
}

func (m *mockUserRepo) GetDoctorsBySpeciality(ctx context.Context, speciality string, activeOnly bool) ([]models.UserData, error) {
	args := m.Called(ctx, speciality, activeOnly)
	return args.Get(0).([]models.UserData), args.Error(1)
}

func (m *mockUserRepo) UpdateSetDocument(ctx context.Context, id string, setDoc bson.M) error {
	return m.Called(ctx, id, setDoc).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepo) CountByRole(ctx context.Context) (map[models.Role]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[models.Role]int64), args.Error(1)
}

func (m *mockUserRepo) CountIncompleteProfiles(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockStorage struct{ mock.Mock }

func (m *mockStorage) Upload(ctx context.Context, r io.Reader, filename, folder string) (string, error) {
	args := m.Called(ctx, r, filename, folder)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) Delete(ctx context.Context, fileURL string) error {
	return m.Called(ctx, fileURL).Error(0)
}

type stubTaken []string

func (s stubTaken) GetTakenSlots(context.Context, string, time.Time) ([]string, error) {
	return s, nil
}
