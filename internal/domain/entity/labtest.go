package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TestStatus controls catalog visibility of a lab test
type TestStatus string

const (
	TestStatusActive   TestStatus = "active"
	TestStatusInactive TestStatus = "inactive"
)

// LabTest represents a diagnostic test offered by a vendor lab.
// VendorID is nil for admin-owned catalog entries. Tests with the same
// name across vendors stay separate rows and are grouped only at
// display time.
type LabTest struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null;index" json:"name"`
	OrganID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"organ_id"`
	VendorID    *uuid.UUID      `gorm:"type:uuid;index" json:"vendor_id,omitempty"`
	PriceMin    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_min"`
	PriceMax    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_max"`
	Status      TestStatus      `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	Overview    string          `gorm:"type:text" json:"overview,omitempty"`
	Preparation string          `gorm:"type:text" json:"preparation,omitempty"`
	Importance  string          `gorm:"type:text" json:"importance,omitempty"`
	ImageURL    string          `gorm:"type:text" json:"image_url,omitempty"`
	Category    string          `gorm:"type:varchar(100);index" json:"category,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Organ  Organ           `gorm:"foreignKey:OrganID" json:"organ,omitempty"`
	Vendor *VendorProfile  `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	Labs   []VendorProfile `gorm:"many2many:test_labs;joinForeignKey:TestID;joinReferences:VendorID" json:"labs,omitempty"`
}

func (LabTest) TableName() string {
	return "lab_tests"
}

// HasPriceRange reports whether the test is priced as a range rather
// than a single value
func (t *LabTest) HasPriceRange() bool {
	return !t.PriceMin.Equal(t.PriceMax)
}
