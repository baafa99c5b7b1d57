// Command seed fills a development database with doctors, patients, services and
// weekly availability.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"medibook/config"
	"medibook/database"
	availabilityRepo "medibook/database/repository/availability"
	healthcareRepo "medibook/database/repository/healthcare"
	userRepoPkg "medibook/database/repository/user"
	"medibook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.Database()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Clear what we are about to seed.
	for _, name := range []string{"users", "healthcare_services", "doctor_availability"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s: %v", name, err)
		}
	}

	users := userRepoPkg.NewMongoUserRepo(db)
	services := healthcareRepo.NewMongoHealthcareServiceRepo(db)
	availability := availabilityRepo.NewMongoAvailabilityRepo(db)

	specialities := []struct {
		Name     string
		Category string
		Service  string
		Minutes  int
		Price    float64
	}{
		{"Cardiology", "Heart", "ECG consultation", 30, 80},
		{"Dermatology", "Skin", "Skin check", 20, 55},
		{"Pediatrics", "Children", "Well-child visit", 30, 60},
		{"General Practice", "Primary care", "General consultation", 15, 40},
	}
	doctorsPerSpeciality := 3
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	counter := 1
	for _, sp := range specialities {
		for i := 0; i < doctorsPerSpeciality; i++ {
			doctor := &models.UserData{
				ID:            uuid.NewString(),
				Role:          models.RoleDoctor,
				Email:         fmt.Sprintf("doctor_%d@example.com", counter),
				FirstName:     "Doctor",
				LastName:      fmt.Sprintf("%s %d", sp.Name, i+1),
				PhoneNumber:   fmt.Sprintf("900000%04d", counter),
				AccountStatus: models.AccountActive,
				ClinicID:      fmt.Sprintf("clinic-%d", 1+rng.Intn(3)),
				Speciality:    sp.Name,
				Description:   fmt.Sprintf("%s specialist", sp.Name),
				Diploma:       "MD",
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			doctor.ProfileComplete = doctor.IsProfileComplete()
			if err := users.Create(ctx, doctor); err != nil {
				log.Fatalf("Failed to insert doctor: %v", err)
			}

			svc := &models.HealthcareService{
				ID:              uuid.NewString(),
				DoctorID:        doctor.ID,
				Name:            sp.Service,
				Category:        sp.Category,
				DurationMinutes: sp.Minutes,
				Price:           sp.Price,
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if err := services.Create(ctx, svc); err != nil {
				log.Fatalf("Failed to insert service: %v", err)
			}

			// Weekday mornings for everyone, plus a random afternoon block.
			windows := []*models.DoctorAvailability{
				{DaysOfWeek: []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY"}, StartTime: "08:00", EndTime: "12:00"},
				{DaysOfWeek: []string{models.WeekdayNames[rng.Intn(5)]}, StartTime: "14:00", EndTime: "17:30"},
			}
			for _, w := range windows {
				w.ID = uuid.NewString()
				w.DoctorID = doctor.ID
				w.CreatedAt, w.UpdatedAt = now, now
				if err := availability.Create(ctx, w); err != nil {
					log.Fatalf("Failed to insert availability: %v", err)
				}
			}
			counter++
		}
	}

	for i := 1; i <= 5; i++ {
		patient := &models.UserData{
			ID:            uuid.NewString(),
			Role:          models.RolePatient,
			Email:         fmt.Sprintf("patient_%d@example.com", i),
			FirstName:     "Patient",
			LastName:      fmt.Sprintf("%d", i),
			PhoneNumber:   fmt.Sprintf("800000%04d", i),
			AccountStatus: models.AccountActive,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		patient.ProfileComplete = patient.IsProfileComplete()
		if err := users.Create(ctx, patient); err != nil {
			log.Fatalf("Failed to insert patient: %v", err)
		}
	}

	fmt.Printf("Seeded %d doctors and 5 patients\n", counter-1)
}
