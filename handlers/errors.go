package handlers

import (
	"errors"
	"net/http"

	"medibook/middleware"
	"medibook/models"
	"medibook/services/appointment"
	"medibook/services/doctor"
	"medibook/services/identity"
	"medibook/services/review"
	"medibook/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps service sentinel errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, appointment.ErrAppointmentNotFound),
		errors.Is(err, doctor.ErrServiceNotFound),
		errors.Is(err, doctor.ErrAvailabilityNotFound),
		errors.Is(err, doctor.ErrDoctorNotFound),
		errors.Is(err, review.ErrReviewNotFound),
		errors.Is(err, review.ErrUnknownDoctor),
		errors.Is(err, user.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, appointment.ErrInvalidInput),
		errors.Is(err, appointment.ErrInvalidStatus),
		errors.Is(err, appointment.ErrDoctorUnavailable),
		errors.Is(err, doctor.ErrInvalidInput),
		errors.Is(err, review.ErrInvalidInput),
		errors.Is(err, user.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, appointment.ErrForbidden),
		errors.Is(err, doctor.ErrForbidden),
		errors.Is(err, review.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, appointment.ErrSlotTaken),
		errors.Is(err, review.ErrReviewExists),
		errors.Is(err, user.ErrEmailTaken),
		errors.Is(err, identity.ErrIdentityConflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondError writes the structured error body. Unexpected errors are logged
// with the fallback message and their details are not exposed.
func respondError(c *gin.Context, err error, fallback string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		getLogger(c).Error(fallback, zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(status, gin.H{"error": fallback})
		return
	}
	c.JSON(status, gin.H{"error": http.StatusText(status), "message": err.Error()})
}

// mustCaller returns the authenticated caller or aborts with 401.
func mustCaller(c *gin.Context) (models.Caller, bool) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return models.Caller{}, false
	}
	return caller, true
}

// selfOrAdmin aborts with 403 unless the caller is id or an admin.
func selfOrAdmin(c *gin.Context, caller models.Caller, id string) bool {
	if caller.ID == id || caller.IsAdmin() {
		return true
	}
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	return false
}
