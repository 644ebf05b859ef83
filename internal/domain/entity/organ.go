package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrganStatus controls whether an organ is offered in the catalog
type OrganStatus string

const (
	OrganStatusActive   OrganStatus = "active"
	OrganStatusInactive OrganStatus = "inactive"
)

// Organ represents a body organ a lab test targets.
// Tests reference organs by id, not by name, so renaming an organ
// cannot orphan its tests.
type Organ struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string      `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Status    OrganStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Tests []LabTest `gorm:"foreignKey:OrganID" json:"tests,omitempty"`
}

func (Organ) TableName() string {
	return "organs"
}
