package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RegisterPatientRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required,min=2"`
	PhoneNumber string `json:"phone_number" validate:"required,min=10,max=20"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Gender      string `json:"gender" validate:"omitempty,oneof=M F"`
	Address     string `json:"address" validate:"omitempty"`
}

type RegisterVendorRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6"`
	FullName      string `json:"full_name" validate:"required,min=2"`
	LabName       string `json:"lab_name" validate:"required,min=2"`
	LicenseNumber string `json:"license_number" validate:"required"`
	PhoneNumber   string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	Address       string `json:"address" validate:"omitempty"`
	City          string `json:"city" validate:"omitempty"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID             uuid.UUID               `json:"id"`
	Email          string                  `json:"email"`
	FullName       string                  `json:"full_name"`
	Role           string                  `json:"role"`
	VendorProfile  *VendorProfileResponse  `json:"vendor_profile,omitempty"`
	PatientProfile *PatientProfileResponse `json:"patient_profile,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

type VendorProfileResponse struct {
	LabName        string `json:"lab_name"`
	LicenseNumber  string `json:"license_number"`
	PhoneNumber    string `json:"phone_number,omitempty"`
	Address        string `json:"address,omitempty"`
	City           string `json:"city,omitempty"`
	ApprovalStatus string `json:"approval_status"`
}

type PatientProfileResponse struct {
	PhoneNumber string `json:"phone_number,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Address     string `json:"address,omitempty"`
}
