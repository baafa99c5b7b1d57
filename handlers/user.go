package handlers

import (
	"net/http"

	"medibook/models"
	"medibook/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves registration and profile routes under /api/v1/users.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterUserHandler creates the identity-provider account and the local profile.
// The request is multipart: a JSON `dto` part and an optional `file` photo.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.RegisterUserRequest
	if err := bindMultipartDTO(c, &req); err != nil {
		logger.Warn("Invalid registration payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration data", "message": err.Error()})
		return
	}
	photo, closePhoto, err := optionalFile(c, "file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file upload", "message": err.Error()})
		return
	}
	defer closePhoto()

	profile, err := h.Service.Register(c.Request.Context(), req, photo)
	if err != nil {
		respondError(c, err, "Registration failed")
		return
	}
	logger.Info("User registered", zap.String("userId", profile.ID), zap.String("role", string(profile.Role)))
	c.JSON(http.StatusCreated, profile)
}

func (h *UserHandler) GetMeHandler(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	profile, err := h.Service.GetMe(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err, "Failed to fetch profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateMeHandler(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}
	profile, err := h.Service.UpdateProfile(c.Request.Context(), caller.ID, req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateMyPhotoHandler(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	photo, closePhoto, err := optionalFile(c, "file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file upload", "message": err.Error()})
		return
	}
	defer closePhoto()
	if photo == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	profile, err := h.Service.UpdateProfilePhoto(c.Request.Context(), caller.ID, photo)
	if err != nil {
		respondError(c, err, "Failed to update profile photo")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListDoctorsHandler lists active doctors, optionally filtered by ?speciality=.
func (h *UserHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.Service.ListDoctors(c.Request.Context(), c.Query("speciality"))
	if err != nil {
		respondError(c, err, "Failed to fetch doctors")
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *UserHandler) GetUserHandler(c *gin.Context) {
	u, err := h.Service.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, u)
}
