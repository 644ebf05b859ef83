package entity

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalStatus gates vendor access to the dashboard
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// VendorProfile represents a diagnostics-lab account
type VendorProfile struct {
	UserID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	LabName        string         `gorm:"type:varchar(255);not null;index" json:"lab_name"`
	LicenseNumber  string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	PhoneNumber    string         `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Address        string         `gorm:"type:text" json:"address,omitempty"`
	City           string         `gorm:"type:varchar(100);index" json:"city,omitempty"`
	ApprovalStatus ApprovalStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"approval_status"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Tests    []LabTest `gorm:"foreignKey:VendorID" json:"tests,omitempty"`
	Bookings []Booking `gorm:"foreignKey:VendorID" json:"bookings,omitempty"`
}

func (VendorProfile) TableName() string {
	return "vendor_profiles"
}

// IsApproved checks if the vendor may operate on bookings and tests
func (v *VendorProfile) IsApproved() bool {
	return v.ApprovalStatus == ApprovalStatusApproved
}
