package routes

import (
	"net/http"
	"strings"
	"time"

	"medibook/config"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/models"
	"medibook/services/storage"
	"medibook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterAppointmentRoutes registers booking and scheduling endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.Verifier))
		api.POST("", middleware.RequireRoles(models.RolePatient, models.RoleAdmin), hb.CreateAppointment)
		api.GET("/doctor/:doctorId", middleware.RequireRoles(models.RoleDoctor, models.RoleAdmin), hb.GetDoctorAppointments)
		api.GET("/details/:id", hb.GetAppointmentDetails)
		api.GET("/taken-appointments/:doctorId", hb.GetTakenSlots)
		api.GET("/available/:doctorId", hb.IsSlotAvailable)
		api.GET("/dashboard/:doctorId", hb.GetDoctorDashboard)
		api.GET("/:userId", hb.GetPatientAppointments)
		api.PUT("/:id/status/:status", middleware.RequireRoles(models.RoleDoctor, models.RolePatient, models.RoleAdmin), hb.UpdateAppointmentStatus)
	}
}

// RegisterDoctorRoutes registers healthcare service and availability endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/doctor")
	{
		// Public catalogue
		api.GET("/healthcare/service/:id", hb.GetHealthcareService)
		api.GET("/healthcare/services", hb.ListServices)
		api.GET("/healthcare/services/doctor/:doctorId", hb.ListDoctorServices)
		api.GET("/availability/:doctorId", hb.GetAvailability)
		api.GET("/availability/:doctorId/slots", hb.GetFreeSlots)

		// Owner or admin; ownership is checked by the service.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.Verifier))
		protected.POST("/healthcare/service", middleware.RequireRoles(models.RoleDoctor), hb.CreateHealthcareService)
		protected.PUT("/healthcare/service/:id", hb.UpdateHealthcareService)
		protected.DELETE("/healthcare/service/:id", hb.DeleteHealthcareService)
		protected.POST("/availability", middleware.RequireRoles(models.RoleDoctor), hb.AddAvailability)
		protected.DELETE("/availability/:id", hb.DeleteAvailability)
	}
}

// RegisterUserRoutes registers registration and profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/users")
	{
		api.POST("/register", hb.RegisterUser)
		api.GET("/doctors", hb.ListDoctors)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.Verifier))
		protected.GET("/me", hb.GetMe)
		protected.PUT("/me", hb.UpdateMe)
		protected.PUT("/me/photo", hb.UpdateMyPhoto)
		protected.GET("/:id", hb.GetUser)
	}
}

// RegisterReviewRoutes registers doctor review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/reviews")
	{
		api.GET("/doctor/:doctorId", hb.GetDoctorReviews)
		api.GET("/doctor/:doctorId/summary", hb.GetDoctorRatingSummary)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.Verifier))
		protected.POST("", middleware.RequireRoles(models.RolePatient), hb.CreateReview)
		protected.GET("/mine", middleware.RequireRoles(models.RolePatient), hb.GetMyReviews)
		protected.PUT("/:id", hb.UpdateReview)
		protected.DELETE("/:id", hb.DeleteReview)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.Verifier), middleware.RequireAdmin())

		adminGroup.GET("/appointments", hb.AdminGetAllAppointments)
		adminGroup.GET("/appointments/status/:status", hb.AdminGetAppointmentsByStatus)
		adminGroup.GET("/appointments/date-range", hb.AdminGetAppointmentsByRange)
		adminGroup.GET("/appointments/doctor/:doctorId", hb.AdminGetDoctorAppointments)
		adminGroup.PUT("/appointments/:id/status/:status", hb.AdminUpdateAppointmentStatus)

		adminGroup.GET("/doctors", hb.AdminGetAllDoctors)
		adminGroup.GET("/doctors/speciality/:speciality", hb.AdminGetDoctorsBySpeciality)
		adminGroup.PUT("/doctors/:id/status/:status", hb.AdminUpdateDoctorStatus)

		adminGroup.GET("/users", hb.AdminGetAllUsers)
		adminGroup.GET("/users/role/:role", hb.AdminGetUsersByRole)
		adminGroup.PUT("/users/:id/profile-status", hb.AdminUpdateUserProfileStatus)
		adminGroup.DELETE("/users/:id", hb.AdminDeleteUser)

		adminGroup.GET("/reviews", hb.AdminGetAllReviews)
		adminGroup.GET("/reviews/doctor/:doctorId", hb.GetDoctorReviews)
		adminGroup.DELETE("/reviews/:id", hb.DeleteReview)

		adminGroup.GET("/dashboard/appointments", hb.AdminAppointmentStats)
		adminGroup.GET("/dashboard/services", hb.AdminServiceStats)
		adminGroup.GET("/dashboard/summary", hb.AdminPlatformSummary)
	}
}

// RegisterOperationalRoutes registers health, metrics and, for the local storage
// driver, the uploaded files.
func RegisterOperationalRoutes(r *gin.Engine) {
	// Redis is optional, so only a lost Mongo connection fails the probe.
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Mongo {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if !strings.EqualFold(config.AppConfig.StorageDriver, "cloudinary") {
		r.Static(storage.PublicPrefix, config.AppConfig.UploadDir)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// Feature areas missing from ENABLED_SERVICES are not mounted.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(utils.RequestLogger(), middleware.Metrics())

	if config.ServiceEnabled("appointments") {
		RegisterAppointmentRoutes(r, hb)
	}
	if config.ServiceEnabled("doctor") {
		RegisterDoctorRoutes(r, hb)
	}
	if config.ServiceEnabled("users") {
		RegisterUserRoutes(r, hb)
	}
	if config.ServiceEnabled("reviews") {
		RegisterReviewRoutes(r, hb)
	}
	RegisterAdminRoutes(r, hb)
	RegisterOperationalRoutes(r)
}
