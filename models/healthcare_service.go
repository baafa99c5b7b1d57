package models

import "time"

// HealthcareService is a bookable service offered by a doctor.
type HealthcareService struct {
	ID              string    `bson:"id" json:"id"`
	DoctorID        string    `bson:"doctorId" json:"doctorId"`
	Name            string    `bson:"name" json:"name"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	Category        string    `bson:"category,omitempty" json:"category,omitempty"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Price           float64   `bson:"price" json:"price"`
	ImageURL        string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HealthcareServiceRequest is the `dto` part of the multipart create request and the
// body of updates.
type HealthcareServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	DurationMinutes int     `json:"durationMinutes" binding:"required,gt=0"`
	Price           float64 `json:"price" binding:"gte=0"`
}

// HealthcareServiceDTO is the API projection.
type HealthcareServiceDTO struct {
	ID              string  `json:"id"`
	DoctorID        string  `json:"doctorId"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Category        string  `json:"category,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	ImageURL        string  `json:"imageUrl,omitempty"`
}

func (s *HealthcareService) ToDTO() HealthcareServiceDTO {
	return HealthcareServiceDTO{
		ID:              s.ID,
		DoctorID:        s.DoctorID,
		Name:            s.Name,
		Description:     s.Description,
		Category:        s.Category,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		ImageURL:        s.ImageURL,
	}
}

func HealthcareServiceDTOs(in []HealthcareService) []HealthcareServiceDTO {
	out := make([]HealthcareServiceDTO, 0, len(in))
	for i := range in {
		out = append(out, in[i].ToDTO())
	}
	return out
}
