package doctor

import (
	"context"
	"time"

	availabilityRepo "medibook/database/repository/availability"
	healthcareRepo "medibook/database/repository/healthcare"
	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/services/storage"

	"go.uber.org/zap"
)

// DoctorService manages what doctors offer and when they work.
type DoctorService interface {
	CreateHealthcareService(ctx context.Context, caller models.Caller, req models.HealthcareServiceRequest, image *storage.File) (*models.HealthcareServiceDTO, error)
	GetHealthcareService(ctx context.Context, id string) (*models.HealthcareServiceDTO, error)
	ListDoctorServices(ctx context.Context, doctorID string) ([]models.HealthcareServiceDTO, error)
	ListServices(ctx context.Context, category string) ([]models.HealthcareServiceDTO, error)
	UpdateHealthcareService(ctx context.Context, caller models.Caller, id string, req models.HealthcareServiceRequest) (*models.HealthcareServiceDTO, error)
	DeleteHealthcareService(ctx context.Context, caller models.Caller, id string) error

	AddAvailability(ctx context.Context, caller models.Caller, req models.AvailabilityRequest) (*models.DoctorAvailability, error)
	GetAvailability(ctx context.Context, doctorID string) ([]models.DoctorAvailability, error)
	DeleteAvailability(ctx context.Context, caller models.Caller, id string) error
	GetFreeSlots(ctx context.Context, doctorID string, date time.Time, durationMinutes int) (*models.SlotResponse, error)

	// Admin
	GetAllDoctors(ctx context.Context) ([]models.UserProfileDTO, error)
	GetDoctorsBySpeciality(ctx context.Context, speciality string) ([]models.UserProfileDTO, error)
	UpdateDoctorStatus(ctx context.Context, id, statusName string) (*models.UserProfileDTO, error)
	GetServiceStats(ctx context.Context) (*models.ServiceStats, error)
}

// TakenSlots reports booked start times; the appointment service satisfies it.
type TakenSlots interface {
	GetTakenSlots(ctx context.Context, doctorID string, date time.Time) ([]string, error)
}

type DefaultDoctorService struct {
	Services     healthcareRepo.HealthcareServiceRepository
	Availability availabilityRepo.AvailabilityRepository
	Users        userRepo.UserRepository
	Storage      storage.StorageService
	// Taken is optional; without it free slots ignore existing bookings.
	Taken       TakenSlots
	SlotMinutes int
	Location    *time.Location
	Now         func() time.Time
	Logger      *zap.Logger
}

func NewDoctorService(
	services healthcareRepo.HealthcareServiceRepository,
	availability availabilityRepo.AvailabilityRepository,
	users userRepo.UserRepository,
	store storage.StorageService,
	taken TakenSlots,
	slotMinutes int,
	loc *time.Location,
	logger *zap.Logger,
) *DefaultDoctorService {
	return &DefaultDoctorService{
		Services:     services,
		Availability: availability,
		Users:        users,
		Storage:      store,
		Taken:        taken,
		SlotMinutes:  slotMinutes,
		Location:     loc,
		Now:          time.Now,
		Logger:       logger,
	}
}

func canManage(caller models.Caller, ownerID string) bool {
	return caller.IsAdmin() || caller.ID == ownerID
}
