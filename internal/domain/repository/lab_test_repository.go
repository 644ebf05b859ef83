package repository

import (
	"diagnolab/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestFilter narrows catalog listings without coupling the repository
// to delivery DTOs
type TestFilter struct {
	Name     string
	OrganID  *uuid.UUID
	VendorID *uuid.UUID
	Status   entity.TestStatus
	Category string
}

type LabTestRepository interface {
	Create(db *gorm.DB, test *entity.LabTest) error
	FindAll(db *gorm.DB, filter TestFilter, limit, offset int) ([]entity.LabTest, int64, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.LabTest, error)
	FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.LabTest, error)
	Update(db *gorm.DB, test *entity.LabTest) error
	ReplaceLabs(db *gorm.DB, test *entity.LabTest, labs []entity.VendorProfile) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
