package appointment

import (
	"context"
	"time"

	"medibook/models"

	"github.com/stretchr/testify/mock"
)

type mockAppointmentRepo struct {
	mock.Mock
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	return m.Called(ctx, appt).Error(0)
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAppointmentRepo) list(args mock.Arguments) ([]models.Appointment, error) {
	if a := args.Get(0); a != nil {
		return a.([]models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAppointmentRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return m.list(m.Called(ctx))
}

func (m *mockAppointmentRepo) GetByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return m.list(m.Called(ctx, doctorID))
}

func (m *mockAppointmentRepo) GetByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return m.list(m.Called(ctx, patientID))
}

func (m *mockAppointmentRepo) GetByDoctorIDAndDateTimeBetween(ctx context.Context, doctorID string, from, to time.Time) ([]models.Appointment, error) {
	return m.list(m.Called(ctx, doctorID, from, to))
}

func (m *mockAppointmentRepo) GetByStatus(ctx context.Context, status models.AppointmentStatus) ([]models.Appointment, error) {
	return m.list(m.Called(ctx, status))
}

func (m *mockAppointmentRepo) GetByDateTimeBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	return m.list(m.Called(ctx, from, to))
}

func (m *mockAppointmentRepo) ExistsActiveByDoctorIDAndDateTime(ctx context.Context, doctorID string, dateTime time.Time) (bool, error) {
	args := m.Called(ctx, doctorID, dateTime)
	return args.Bool(0), args.Error(1)
}

func (m *mockAppointmentRepo) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAppointmentRepo) CountByStatus(ctx context.Context, doctorID string) (map[models.AppointmentStatus]int64, error) {
	args := m.Called(ctx, doctorID)
	if a := args.Get(0); a != nil {
		return a.(map[models.AppointmentStatus]int64), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockReminder struct {
	mock.Mock
}

func (m *mockReminder) Schedule(ctx context.Context, appt *models.Appointment) error {
	return m.Called(ctx, appt).Error(0)
}

func (m *mockReminder) Cancel(ctx context.Context, appointmentID string) error {
	return m.Called(ctx, appointmentID).Error(0)
}
