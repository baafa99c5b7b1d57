package doctor

import "errors"

var (
	ErrServiceNotFound      = errors.New("healthcare service not found")
	ErrAvailabilityNotFound = errors.New("availability not found")
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrInvalidInput         = errors.New("invalid request")
	ErrForbidden            = errors.New("only the owning doctor or an admin may do this")
)
