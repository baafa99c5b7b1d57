package appointment

import (
	"errors"

	"medibook/models"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = models.ErrInvalidStatus
	ErrSlotTaken           = errors.New("the requested time slot is already booked")
	ErrInvalidInput        = errors.New("invalid appointment request")
	ErrDoctorUnavailable   = errors.New("doctor is not available for booking")
	ErrForbidden           = errors.New("not allowed to access this appointment")
)
