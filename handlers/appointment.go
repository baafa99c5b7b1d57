package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"medibook/models"
	"medibook/services/appointment"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves the /api/v1/appointments routes.
type AppointmentHandler struct {
	Service  appointment.AppointmentService
	Location *time.Location
}

func NewAppointmentHandler(svc appointment.AppointmentService, loc *time.Location) *AppointmentHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &AppointmentHandler{Service: svc, Location: loc}
}

// CreateAppointmentHandler books a slot.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	dto, err := h.Service.CreateAppointment(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err, "Failed to create appointment")
		return
	}
	c.JSON(http.StatusCreated, dto)
}

// GetDoctorAppointmentsHandler lists a doctor's appointments. Doctors only see their own.
func (h *AppointmentHandler) GetDoctorAppointmentsHandler(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	doctorID := c.Param("doctorId")
	if !selfOrAdmin(c, caller, doctorID) {
		return
	}
	list, err := h.Service.GetDoctorAppointments(c.Request.Context(), doctorID)
	if err != nil {
		respondError(c, err, "Failed to fetch appointments")
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetPatientAppointmentsHandler lists a patient's appointments. Patients may only
// list their own; doctors and admins may list anyone's.
func (h *AppointmentHandler) GetPatientAppointmentsHandler(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	userID := c.Param("userId")
	if caller.ID != userID && !caller.Has(models.RoleDoctor) && !caller.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}
	list, err := h.Service.GetPatientAppointments(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to fetch appointments")
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetAppointmentDetailsHandler returns one appointment to its participants or an admin.
func (h *AppointmentHandler) GetAppointmentDetailsHandler(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	dto, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch appointment")
		return
	}
	if caller.ID != dto.PatientID && caller.ID != dto.DoctorID && !caller.IsAdmin() {
		respondError(c, appointment.ErrForbidden, "Access denied")
		return
	}
	c.JSON(http.StatusOK, dto)
}

// GetTakenSlotsHandler returns the booked HH:mm start times for a date.
func (h *AppointmentHandler) GetTakenSlotsHandler(c *gin.Context) {
	date, err := utils.ParseDate(c.Query("date"), h.Location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date", "message": err.Error()})
		return
	}
	slots, err := h.Service.GetTakenSlots(c.Request.Context(), c.Param("doctorId"), date)
	if err != nil {
		respondError(c, err, "Failed to fetch taken slots")
		return
	}
	c.JSON(http.StatusOK, slots)
}

// IsSlotAvailableHandler reports whether a start time is still free.
func (h *AppointmentHandler) IsSlotAvailableHandler(c *gin.Context) {
	dateTime, err := time.Parse(time.RFC3339, c.Query("dateTime"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dateTime", "message": "expected RFC3339 timestamp"})
		return
	}
	available, err := h.Service.IsSlotAvailable(c.Request.Context(), c.Param("doctorId"), dateTime)
	if err != nil {
		respondError(c, err, "Failed to check availability")
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}

// GetDoctorDashboardHandler returns the dashboard to the doctor themself or an admin.
func (h *AppointmentHandler) GetDoctorDashboardHandler(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	doctorID := c.Param("doctorId")
	if !selfOrAdmin(c, caller, doctorID) {
		return
	}
	dashboard, err := h.Service.GetDoctorDashboard(c.Request.Context(), doctorID)
	if err != nil {
		respondError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// UpdateStatusHandler answers with a plain-text true or false. Unknown ids and
// unknown statuses both yield false; they are told apart only in the logs.
// Callers outside the appointment get 403.
func (h *AppointmentHandler) UpdateStatusHandler(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	id, status := c.Param("id"), c.Param("status")
	logger := getLogger(c).With(zap.String("appointmentId", id), zap.String("status", status))

	updated, err := h.Service.UpdateStatus(c.Request.Context(), caller, id, status)
	switch {
	case err == nil:
	case errors.Is(err, appointment.ErrForbidden):
		respondError(c, err, "Access denied")
		return
	case errors.Is(err, appointment.ErrInvalidStatus):
		logger.Warn("Rejected unknown appointment status")
	case errors.Is(err, appointment.ErrAppointmentNotFound):
		logger.Warn("Status update for unknown appointment")
	default:
		logger.Error("Failed to update appointment status", zap.Error(err))
	}
	c.String(http.StatusOK, strconv.FormatBool(updated))
}
