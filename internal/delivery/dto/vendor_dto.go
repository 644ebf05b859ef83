package dto

import (
	"time"

	"github.com/google/uuid"
)

// Response DTOs

type VendorResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	LabName        string    `json:"lab_name"`
	LicenseNumber  string    `json:"license_number"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	Address        string    `json:"address,omitempty"`
	City           string    `json:"city,omitempty"`
	ApprovalStatus string    `json:"approval_status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type VendorListResponse struct {
	Vendors []VendorResponse `json:"vendors"`
}
