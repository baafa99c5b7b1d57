package models

import (
	"errors"
	"strings"
	"time"
)

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

// AllAppointmentStatuses lists every status in declaration order.
var AllAppointmentStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// ErrInvalidStatus is returned when a status name does not match any known status.
var ErrInvalidStatus = errors.New("invalid appointment status")

// ParseAppointmentStatus resolves a status by name, ignoring case.
func ParseAppointmentStatus(name string) (AppointmentStatus, error) {
	candidate := AppointmentStatus(strings.ToUpper(strings.TrimSpace(name)))
	for _, s := range AllAppointmentStatuses {
		if s == candidate {
			return s, nil
		}
	}
	return "", ErrInvalidStatus
}

// Appointment is a persisted booking between a patient and a doctor.
type Appointment struct {
	ID                   string            `bson:"id" json:"id"`
	PatientID            string            `bson:"patientId" json:"patientId"`
	DoctorID             string            `bson:"doctorId" json:"doctorId"`
	DateTime             time.Time         `bson:"dateTime" json:"dateTime"`
	Status               AppointmentStatus `bson:"status" json:"status"`
	Description          string            `bson:"description,omitempty" json:"description,omitempty"`
	PaymentTransactionID string            `bson:"paymentTransactionId,omitempty" json:"paymentTransactionId,omitempty"`
	CreatedAt            time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// CreateAppointmentRequest is the booking payload.
type CreateAppointmentRequest struct {
	DoctorID             string    `json:"doctorId" binding:"required"`
	PatientID            string    `json:"patientId"`
	DateTime             time.Time `json:"dateTime" binding:"required"`
	Description          string    `json:"description"`
	PaymentTransactionID string    `json:"paymentTransactionId"`
}

// AppointmentDTO is the API projection of an appointment.
type AppointmentDTO struct {
	ID                   string            `json:"id"`
	PatientID            string            `json:"patientId"`
	DoctorID             string            `json:"doctorId"`
	DateTime             time.Time         `json:"dateTime"`
	Status               AppointmentStatus `json:"status"`
	Description          string            `json:"description,omitempty"`
	PaymentTransactionID string            `json:"paymentTransactionId,omitempty"`
	CreatedAt            time.Time         `json:"createdAt"`
	UpdatedAt            time.Time         `json:"updatedAt"`
}

// ToDTO projects the appointment for API responses.
func (a *Appointment) ToDTO() AppointmentDTO {
	return AppointmentDTO{
		ID:                   a.ID,
		PatientID:            a.PatientID,
		DoctorID:             a.DoctorID,
		DateTime:             a.DateTime,
		Status:               a.Status,
		Description:          a.Description,
		PaymentTransactionID: a.PaymentTransactionID,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

// AppointmentDTOs projects a slice, never returning nil.
func AppointmentDTOs(appts []Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(appts))
	for i := range appts {
		out = append(out, appts[i].ToDTO())
	}
	return out
}

// ReminderPayload is the body of an appointment reminder task.
type ReminderPayload struct {
	AppointmentID string    `json:"appointmentId"`
	PatientID     string    `json:"patientId"`
	DoctorID      string    `json:"doctorId"`
	DateTime      time.Time `json:"dateTime"`
}
