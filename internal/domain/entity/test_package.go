package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TestPackage bundles a set of tests sold as one purchasable unit
type TestPackage struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Status      TestStatus      `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Tests []LabTest `gorm:"many2many:package_tests;joinForeignKey:PackageID;joinReferences:TestID" json:"tests,omitempty"`
}

func (TestPackage) TableName() string {
	return "test_packages"
}
