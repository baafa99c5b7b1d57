package models

import "time"

// DoctorReview is a patient's rating of a doctor.
type DoctorReview struct {
	ID          string    `bson:"id" json:"id"`
	PatientID   string    `bson:"patientId" json:"patientId"`
	DoctorID    string    `bson:"doctorId" json:"doctorId"`
	Rating      int       `bson:"rating" json:"rating"`
	Comment     string    `bson:"comment,omitempty" json:"comment,omitempty"`
	DatePosted  time.Time `bson:"datePosted" json:"datePosted"`
	LastUpdated time.Time `bson:"lastUpdated" json:"lastUpdated"`
}

// ReviewRequest creates or updates a review.
type ReviewRequest struct {
	DoctorID string `json:"doctorId"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment"`
}

// ReviewDTO is the API projection of a review.
type ReviewDTO struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patientId"`
	DoctorID    string    `json:"doctorId"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	DatePosted  time.Time `json:"datePosted"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func (r *DoctorReview) ToDTO() ReviewDTO {
	return ReviewDTO{
		ID:          r.ID,
		PatientID:   r.PatientID,
		DoctorID:    r.DoctorID,
		Rating:      r.Rating,
		Comment:     r.Comment,
		DatePosted:  r.DatePosted,
		LastUpdated: r.LastUpdated,
	}
}

func ReviewDTOs(in []DoctorReview) []ReviewDTO {
	out := make([]ReviewDTO, 0, len(in))
	for i := range in {
		out = append(out, in[i].ToDTO())
	}
	return out
}

// DoctorRatingSummary aggregates a doctor's reviews.
type DoctorRatingSummary struct {
	DoctorID      string  `json:"doctorId"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int64   `json:"reviewCount"`
}
