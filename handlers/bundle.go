package handlers

import (
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Verifier *utils.TokenVerifier

	// Appointment endpoints
	CreateAppointment       gin.HandlerFunc
	GetDoctorAppointments   gin.HandlerFunc
	GetPatientAppointments  gin.HandlerFunc
	GetAppointmentDetails   gin.HandlerFunc
	GetTakenSlots           gin.HandlerFunc
	IsSlotAvailable         gin.HandlerFunc
	GetDoctorDashboard      gin.HandlerFunc
	UpdateAppointmentStatus gin.HandlerFunc

	// Doctor endpoints
	CreateHealthcareService gin.HandlerFunc
	GetHealthcareService    gin.HandlerFunc
	ListServices            gin.HandlerFunc
	ListDoctorServices      gin.HandlerFunc
	UpdateHealthcareService gin.HandlerFunc
	DeleteHealthcareService gin.HandlerFunc
	AddAvailability         gin.HandlerFunc
	GetAvailability         gin.HandlerFunc
	DeleteAvailability      gin.HandlerFunc
	GetFreeSlots            gin.HandlerFunc

	// User endpoints
	RegisterUser  gin.HandlerFunc
	GetMe         gin.HandlerFunc
	UpdateMe      gin.HandlerFunc
	UpdateMyPhoto gin.HandlerFunc
	ListDoctors   gin.HandlerFunc
	GetUser       gin.HandlerFunc

	// Review endpoints
	CreateReview           gin.HandlerFunc
	UpdateReview           gin.HandlerFunc
	DeleteReview           gin.HandlerFunc
	GetMyReviews           gin.HandlerFunc
	GetDoctorReviews       gin.HandlerFunc
	GetDoctorRatingSummary gin.HandlerFunc

	// Admin endpoints
	AdminGetAllAppointments      gin.HandlerFunc
	AdminGetAppointmentsByStatus gin.HandlerFunc
	AdminGetAppointmentsByRange  gin.HandlerFunc
	AdminGetDoctorAppointments   gin.HandlerFunc
	AdminUpdateAppointmentStatus gin.HandlerFunc
	AdminGetAllDoctors           gin.HandlerFunc
	AdminGetDoctorsBySpeciality  gin.HandlerFunc
	AdminUpdateDoctorStatus      gin.HandlerFunc
	AdminGetAllUsers             gin.HandlerFunc
	AdminGetUsersByRole          gin.HandlerFunc
	AdminUpdateUserProfileStatus gin.HandlerFunc
	AdminDeleteUser              gin.HandlerFunc
	AdminGetAllReviews           gin.HandlerFunc
	AdminAppointmentStats        gin.HandlerFunc
	AdminServiceStats            gin.HandlerFunc
	AdminPlatformSummary         gin.HandlerFunc
}

// NewHandlerBundle wires every handler method into the bundle.
func NewHandlerBundle(
	verifier *utils.TokenVerifier,
	ah *AppointmentHandler,
	dh *DoctorHandler,
	uh *UserHandler,
	rh *ReviewHandler,
	adm *AdminHandler,
) *HandlerBundle {
	return &HandlerBundle{
		Verifier: verifier,

		CreateAppointment:       ah.CreateAppointmentHandler,
		GetDoctorAppointments:   ah.GetDoctorAppointmentsHandler,
		GetPatientAppointments:  ah.GetPatientAppointmentsHandler,
		GetAppointmentDetails:   ah.GetAppointmentDetailsHandler,
		GetTakenSlots:           ah.GetTakenSlotsHandler,
		IsSlotAvailable:         ah.IsSlotAvailableHandler,
		GetDoctorDashboard:      ah.GetDoctorDashboardHandler,
		UpdateAppointmentStatus: ah.UpdateStatusHandler,

		CreateHealthcareService: dh.CreateHealthcareServiceHandler,
		GetHealthcareService:    dh.GetHealthcareServiceHandler,
		ListServices:            dh.ListServicesHandler,
		ListDoctorServices:      dh.ListDoctorServicesHandler,
		UpdateHealthcareService: dh.UpdateHealthcareServiceHandler,
		DeleteHealthcareService: dh.DeleteHealthcareServiceHandler,
		AddAvailability:         dh.AddAvailabilityHandler,
		GetAvailability:         dh.GetAvailabilityHandler,
		DeleteAvailability:      dh.DeleteAvailabilityHandler,
		GetFreeSlots:            dh.GetFreeSlotsHandler,

		RegisterUser:  uh.RegisterUserHandler,
		GetMe:         uh.GetMeHandler,
		UpdateMe:      uh.UpdateMeHandler,
		UpdateMyPhoto: uh.UpdateMyPhotoHandler,
		ListDoctors:   uh.ListDoctorsHandler,
		GetUser:       uh.GetUserHandler,

		CreateReview:           rh.CreateReviewHandler,
		UpdateReview:           rh.UpdateReviewHandler,
		DeleteReview:           rh.DeleteReviewHandler,
		GetMyReviews:           rh.GetMyReviewsHandler,
		GetDoctorReviews:       rh.GetDoctorReviewsHandler,
		GetDoctorRatingSummary: rh.GetDoctorRatingSummaryHandler,

		AdminGetAllAppointments:      adm.GetAllAppointmentsHandler,
		AdminGetAppointmentsByStatus: adm.GetAppointmentsByStatusHandler,
		AdminGetAppointmentsByRange:  adm.GetAppointmentsByDateRangeHandler,
		AdminGetDoctorAppointments:   adm.GetDoctorAppointmentsHandler,
		AdminUpdateAppointmentStatus: adm.UpdateAppointmentStatusHandler,
		AdminGetAllDoctors:           adm.GetAllDoctorsHandler,
		AdminGetDoctorsBySpeciality:  adm.GetDoctorsBySpecialityHandler,
		AdminUpdateDoctorStatus:      adm.UpdateDoctorStatusHandler,
		AdminGetAllUsers:             adm.GetAllUsersHandler,
		AdminGetUsersByRole:          adm.GetUsersByRoleHandler,
		AdminUpdateUserProfileStatus: adm.UpdateUserProfileStatusHandler,
		AdminDeleteUser:              adm.DeleteUserHandler,
		AdminGetAllReviews:           rh.GetAllReviewsHandler,
		AdminAppointmentStats:        adm.AppointmentStatsHandler,
		AdminServiceStats:            adm.ServiceStatsHandler,
		AdminPlatformSummary:         adm.PlatformSummaryHandler,
	}
}
