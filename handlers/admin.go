package handlers

import (
	"net/http"
	"strconv"
	"time"

	"medibook/services/appointment"
	"medibook/services/doctor"
	"medibook/services/user"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates the /api/admin operations. Review moderation reuses
// ReviewHandler.
type AdminHandler struct {
	Appointments appointment.AppointmentService
	Doctors      doctor.DoctorService
	Users        user.UserService
	Location     *time.Location
}

func NewAdminHandler(appts appointment.AppointmentService, doctors doctor.DoctorService, users user.UserService, loc *time.Location) *AdminHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &AdminHandler{Appointments: appts, Doctors: doctors, Users: users, Location: loc}
}

func (h *AdminHandler) GetAllAppointmentsHandler(c *gin.Context) {
	list, err := h.Appointments.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch appointments")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *AdminHandler) GetAppointmentsByStatusHandler(c *gin.Context) {
	list, err := h.Appointments.GetByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		respondError(c, err, "Failed to fetch appointments")
		return
	}
	c.JSON(http.StatusOK, list)
}

// parseRangeBound accepts an RFC3339 timestamp or a YYYY-MM-DD date.
func (h *AdminHandler) parseRangeBound(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return utils.ParseDate(raw, h.Location)
}

// GetAppointmentsByDateRangeHandler lists appointments in [from, to).
func (h *AdminHandler) GetAppointmentsByDateRangeHandler(c *gin.Context) {
	from, err := h.parseRangeBound(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from", "message": err.Error()})
		return
	}
	to, err := h.parseRangeBound(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to", "message": err.Error()})
		return
	}
	list, err := h.Appointments.GetByDateRange(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err, "Failed to fetch appointments")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *AdminHandler) GetDoctorAppointmentsHandler(c *gin.Context) {
	list, err := h.Appointments.GetDoctorAppointments(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		respondError(c, err, "Failed to fetch appointments")
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateAppointmentStatusHandler reports unknown ids as 404 and bad statuses as 400,
// unlike the plain-text user route.
func (h *AdminHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	dto, err := h.Appointments.AdminUpdateStatus(c.Request.Context(), c.Param("id"), c.Param("status"))
	if err != nil {
		respondError(c, err, "Failed to update appointment status")
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *AdminHandler) GetAllDoctorsHandler(c *gin.Context) {
	list, err := h.Doctors.GetAllDoctors(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch doctors")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *AdminHandler) GetDoctorsBySpecialityHandler(c *gin.Context) {
	list, err := h.Doctors.GetDoctorsBySpeciality(c.Request.Context(), c.Param("speciality"))
	if err != nil {
		respondError(c, err, "Failed to fetch doctors")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *AdminHandler) UpdateDoctorStatusHandler(c *gin.Context) {
	dto, err := h.Doctors.UpdateDoctorStatus(c.Request.Context(), c.Param("id"), c.Param("status"))
	if err != nil {
		respondError(c, err, "Failed to update doctor status")
		return
	}
	getLogger(c).Info("Doctor account status changed", zap.String("doctorId", dto.ID), zap.String("status", string(dto.AccountStatus)))
	c.JSON(http.StatusOK, dto)
}

func (h *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	list, err := h.Users.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *AdminHandler) GetUsersByRoleHandler(c *gin.Context) {
	list, err := h.Users.GetUsersByRole(c.Request.Context(), c.Param("role"))
	if err != nil {
		respondError(c, err, "Failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateUserProfileStatusHandler sets the profile-complete flag from ?complete=.
func (h *AdminHandler) UpdateUserProfileStatusHandler(c *gin.Context) {
	complete, err := strconv.ParseBool(c.Query("complete"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complete flag", "message": "complete must be true or false"})
		return
	}
	dto, err := h.Users.UpdateUserProfileStatus(c.Request.Context(), c.Param("id"), complete)
	if err != nil {
		respondError(c, err, "Failed to update profile status")
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *AdminHandler) DeleteUserHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Users.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete user")
		return
	}
	getLogger(c).Info("User deleted by admin", zap.String("userId", id))
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *AdminHandler) AppointmentStatsHandler(c *gin.Context) {
	stats, err := h.Appointments.GetAdminStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute appointment stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) ServiceStatsHandler(c *gin.Context) {
	stats, err := h.Doctors.GetServiceStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute service stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) PlatformSummaryHandler(c *gin.Context) {
	summary, err := h.Users.GetPlatformSummary(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute platform summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}
