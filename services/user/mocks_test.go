package user

import (
	"context"
	"io"

	"medibook/models"
	"medibook/services/identity"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

type mockUserRepo struct {
	mock.Mock
}

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

func (m *mockUserRepo) users(args mock.Arguments) ([]models.UserData, error) {
	if u := args.Get(0); u != nil {
		return u.([]models.UserData), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetAll(ctx context.Context) ([]models.UserData, error) {
	return m.users(m.Called(ctx))
}

func (m *mockUserRepo) GetByRole(ctx context.Context, role models.Role) ([]models.UserData, error) {
	return m.users(m.Called(ctx, role))
}

func (m *mockUserRepo) GetDoctorsBySpeciality(ctx context.Context, speciality string, activeOnly bool) ([]models.UserData, error) {
	return m.users(m.Called(ctx, speciality, activeOnly))
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

type mockIdentity struct {
	mock.Mock
}

func (m *mockIdentity) CreateUser(ctx context.Context, reg identity.UserRegistration) (string, error) {
	args := m.Called(ctx, reg)
	return args.String(0), args.Error(1)
}

func (m *mockIdentity) DeleteUser(ctx context.Context, subject string) error {
	return m.Called(ctx, subject).Error(0)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) Upload(ctx context.Context, r io.Reader, filename, folder string) (string, error) {
	args := m.Called(ctx, r, filename, folder)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) Delete(ctx context.Context, fileURL string) error {
	return m.Called(ctx, fileURL).Error(0)
}
