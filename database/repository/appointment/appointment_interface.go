package appointmentRepo

import (
	"context"
	"time"

	"medibook/models"
)

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// Create inserts a new appointment.
	Create(ctx context.Context, appt *models.Appointment) error
	// GetByID retrieves an appointment by its ID.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// GetAll retrieves every appointment ordered by date.
	GetAll(ctx context.Context) ([]models.Appointment, error)
	// GetByDoctorID retrieves a doctor's appointments ordered by date.
	GetByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error)
	// GetByPatientID retrieves a patient's appointments ordered by date.
	GetByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	// GetByDoctorIDAndDateTimeBetween retrieves a doctor's appointments in [from, to).
	GetByDoctorIDAndDateTimeBetween(ctx context.Context, doctorID string, from, to time.Time) ([]models.Appointment, error)
	// GetByStatus retrieves appointments in the given status.
	GetByStatus(ctx context.Context, status models.AppointmentStatus) ([]models.Appointment, error)
	// GetByDateTimeBetween retrieves appointments in [from, to).
	GetByDateTimeBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	// ExistsActiveByDoctorIDAndDateTime reports whether a non-cancelled appointment holds the slot.
	ExistsActiveByDoctorIDAndDateTime(ctx context.Context, doctorID string, dateTime time.Time) (bool, error)
	// UpdateStatus sets the status and returns the number of matched documents.
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) (int64, error)
	// CountByStatus counts appointments per status; doctorID may be empty for all doctors.
	CountByStatus(ctx context.Context, doctorID string) (map[models.AppointmentStatus]int64, error)
}
