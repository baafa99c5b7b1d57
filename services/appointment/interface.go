package appointment

import (
	"context"
	"time"

	"medibook/models"
)

// AppointmentService exposes booking, status management and reporting.
type AppointmentService interface {
	CreateAppointment(ctx context.Context, caller models.Caller, req models.CreateAppointmentRequest) (*models.AppointmentDTO, error)
	UpdateStatus(ctx context.Context, caller models.Caller, id, statusName string) (bool, error)
	GetTakenSlots(ctx context.Context, doctorID string, date time.Time) ([]string, error)
	IsSlotAvailable(ctx context.Context, doctorID string, dateTime time.Time) (bool, error)
	GetByID(ctx context.Context, id string) (*models.AppointmentDTO, error)
	GetDoctorAppointments(ctx context.Context, doctorID string) ([]models.AppointmentDTO, error)
	GetPatientAppointments(ctx context.Context, patientID string) ([]models.AppointmentDTO, error)
	GetDoctorDashboard(ctx context.Context, doctorID string) (*models.DoctorDashboard, error)

	// Admin operations.
	GetAll(ctx context.Context) ([]models.AppointmentDTO, error)
	GetByStatus(ctx context.Context, statusName string) ([]models.AppointmentDTO, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]models.AppointmentDTO, error)
	AdminUpdateStatus(ctx context.Context, id, statusName string) (*models.AppointmentDTO, error)
	GetAdminStats(ctx context.Context) (*models.AdminAppointmentStats, error)
}
