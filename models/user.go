package models

import (
	"fmt"
	"strings"
	"time"
)

// Role is the platform role of a user. It is stored explicitly at registration.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleDoctor  Role = "DOCTOR"
	RolePatient Role = "PATIENT"
)

var AllRoles = []Role{RoleAdmin, RoleDoctor, RolePatient}

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range AllRoles {
		if r == known {
			return r, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", s)
}

// AccountStatus gates whether a doctor is listed and bookable.
type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountSuspended AccountStatus = "SUSPENDED"
)

func ParseAccountStatus(s string) (AccountStatus, error) {
	switch AccountStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case AccountActive:
		return AccountActive, nil
	case AccountSuspended:
		return AccountSuspended, nil
	}
	return "", fmt.Errorf("invalid account status %q", s)
}

// UserData is the platform-side profile of an identity-provider user.
type UserData struct {
	ID              string        `bson:"id" json:"id"`
	Role            Role          `bson:"role" json:"role"`
	Email           string        `bson:"email,omitempty" json:"email,omitempty"`
	FirstName       string        `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName        string        `bson:"lastName,omitempty" json:"lastName,omitempty"`
	PhoneNumber     string        `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	ProfilePhotoURL string        `bson:"profilePhotoUrl,omitempty" json:"profilePhotoUrl,omitempty"`
	ProfileComplete bool          `bson:"profileComplete" json:"profileComplete"`
	AccountStatus   AccountStatus `bson:"accountStatus" json:"accountStatus"`
	ClinicID        string        `bson:"clinicId,omitempty" json:"clinicId,omitempty"`
	Speciality      string        `bson:"speciality,omitempty" json:"speciality,omitempty"`
	Description     string        `bson:"description,omitempty" json:"description,omitempty"`
	Diploma         string        `bson:"diploma,omitempty" json:"diploma,omitempty"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// IsProfileComplete reports whether the fields a role needs are filled in.
func (u *UserData) IsProfileComplete() bool {
	if u.PhoneNumber == "" {
		return false
	}
	if u.Role == RoleDoctor {
		return u.ClinicID != "" && u.Speciality != "" && u.Description != "" && u.Diploma != ""
	}
	return true
}

// RegisterUserRequest is the `dto` part of the multipart registration request.
type RegisterUserRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Role        string `json:"role" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	ClinicID    string `json:"clinicId"`
	Speciality  string `json:"speciality"`
	Description string `json:"description"`
	Diploma     string `json:"diploma"`
}

// UpdateProfileRequest carries a partial profile update; empty fields are ignored.
type UpdateProfileRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	ClinicID    string `json:"clinicId"`
	Speciality  string `json:"speciality"`
	Description string `json:"description"`
	Diploma     string `json:"diploma"`
}

// UserProfileDTO is the full profile returned to its owner and to admins.
type UserProfileDTO struct {
	ID              string        `json:"id"`
	Role            Role          `json:"role"`
	Email           string        `json:"email,omitempty"`
	FirstName       string        `json:"firstName,omitempty"`
	LastName        string        `json:"lastName,omitempty"`
	PhoneNumber     string        `json:"phoneNumber,omitempty"`
	ProfilePhotoURL string        `json:"profilePhotoUrl,omitempty"`
	ProfileComplete bool          `json:"profileComplete"`
	AccountStatus   AccountStatus `json:"accountStatus"`
	ClinicID        string        `json:"clinicId,omitempty"`
	Speciality      string        `json:"speciality,omitempty"`
	Description     string        `json:"description,omitempty"`
	Diploma         string        `json:"diploma,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

func (u *UserData) ToProfileDTO() UserProfileDTO {
	return UserProfileDTO{
		ID:              u.ID,
		Role:            u.Role,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		PhoneNumber:     u.PhoneNumber,
		ProfilePhotoURL: u.ProfilePhotoURL,
		ProfileComplete: u.ProfileComplete,
		AccountStatus:   u.AccountStatus,
		ClinicID:        u.ClinicID,
		Speciality:      u.Speciality,
		Description:     u.Description,
		Diploma:         u.Diploma,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func UserProfileDTOs(in []UserData) []UserProfileDTO {
	out := make([]UserProfileDTO, 0, len(in))
	for i := range in {
		out = append(out, in[i].ToProfileDTO())
	}
	return out
}

// PublicUserDTO is what any authenticated caller may see about another user.
type PublicUserDTO struct {
	ID              string `json:"id"`
	Role            Role   `json:"role"`
	FirstName       string `json:"firstName,omitempty"`
	LastName        string `json:"lastName,omitempty"`
	ProfilePhotoURL string `json:"profilePhotoUrl,omitempty"`
	ClinicID        string `json:"clinicId,omitempty"`
	Speciality      string `json:"speciality,omitempty"`
	Description     string `json:"description,omitempty"`
	Diploma         string `json:"diploma,omitempty"`
}

func (u *UserData) ToPublicDTO() PublicUserDTO {
	dto := PublicUserDTO{
		ID:              u.ID,
		Role:            u.Role,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfilePhotoURL: u.ProfilePhotoURL,
	}
	if u.Role == RoleDoctor {
		dto.ClinicID = u.ClinicID
		dto.Speciality = u.Speciality
		dto.Description = u.Description
		dto.Diploma = u.Diploma
	}
	return dto
}

func PublicUserDTOs(in []UserData) []PublicUserDTO {
	out := make([]PublicUserDTO, 0, len(in))
	for i := range in {
		out = append(out, in[i].ToPublicDTO())
	}
	return out
}
