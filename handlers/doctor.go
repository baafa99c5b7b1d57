package handlers

import (
	"net/http"
	"strconv"
	"time"

	"medibook/models"
	"medibook/services/doctor"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves healthcare services and availability under /api/v1/doctor.
type DoctorHandler struct {
	Service  doctor.DoctorService
	Location *time.Location
}

func NewDoctorHandler(svc doctor.DoctorService, loc *time.Location) *DoctorHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &DoctorHandler{Service: svc, Location: loc}
}

// CreateHealthcareServiceHandler accepts a multipart request with a JSON `dto` part
// and an optional `file` image.
func (h *DoctorHandler) CreateHealthcareServiceHandler(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	var req models.HealthcareServiceRequest
	if err := bindMultipartDTO(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service data", "message": err.Error()})
		return
	}
	image, closeImage, err := optionalFile(c, "file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file upload", "message": err.Error()})
		return
	}
	defer closeImage()

	dto, err := h.Service.CreateHealthcareService(c.Request.Context(), caller, req, image)
	if err != nil {
		respondError(c, err, "Failed to create healthcare service")
		return
	}
	getLogger(c).Info("Healthcare service created", zap.String("serviceId", dto.ID), zap.String("doctorId", dto.DoctorID))
	c.JSON(http.StatusCreated, dto)
}

func (h *DoctorHandler) GetHealthcareServiceHandler(c *gin.Context) {
	dto, err := h.Service.GetHealthcareService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch healthcare service")
		return
	}
	c.JSON(http.StatusOK, dto)
}

// ListServicesHandler lists all services, optionally filtered by ?category=.
func (h *DoctorHandler) ListServicesHandler(c *gin.Context) {
	list, err := h.Service.ListServices(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err, "Failed to fetch healthcare services")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *DoctorHandler) ListDoctorServicesHandler(c *gin.Context) {
	list, err := h.Service.ListDoctorServices(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		respondError(c, err, "Failed to fetch healthcare services")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *DoctorHandler) UpdateHealthcareServiceHandler(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	var req models.HealthcareServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}
	dto, err := h.Service.UpdateHealthcareService(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update healthcare service")
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *DoctorHandler) DeleteHealthcareServiceHandler(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteHealthcareService(c.Request.Context(), caller, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete healthcare service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Healthcare service deleted"})
}

func (h *DoctorHandler) AddAvailabilityHandler(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	var req models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}
	window, err := h.Service.AddAvailability(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err, "Failed to add availability")
		return
	}
	c.JSON(http.StatusCreated, window)
}

func (h *DoctorHandler) GetAvailabilityHandler(c *gin.Context) {
	list, err := h.Service.GetAvailability(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		respondError(c, err, "Failed to fetch availability")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *DoctorHandler) DeleteAvailabilityHandler(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteAvailability(c.Request.Context(), caller, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete availability")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability deleted"})
}

// GetFreeSlotsHandler lists bookable start times for ?date=YYYY-MM-DD. The optional
// ?duration= overrides the default slot length in minutes.
func (h *DoctorHandler) GetFreeSlotsHandler(c *gin.Context) {
	date, err := utils.ParseDate(c.Query("date"), h.Location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date", "message": err.Error()})
		return
	}
	duration := 0
	if raw := c.Query("duration"); raw != "" {
		duration, err = strconv.Atoi(raw)
		if err != nil || duration <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid duration", "message": "duration must be a positive number of minutes"})
			return
		}
	}
	slots, err := h.Service.GetFreeSlots(c.Request.Context(), c.Param("doctorId"), date, duration)
	if err != nil {
		respondError(c, err, "Failed to compute free slots")
		return
	}
	c.JSON(http.StatusOK, slots)
}
