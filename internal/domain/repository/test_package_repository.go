package repository

import (
	"diagnolab/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestPackageRepository interface {
	Create(db *gorm.DB, pkg *entity.TestPackage) error
	FindAll(db *gorm.DB, limit, offset int) ([]entity.TestPackage, int64, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.TestPackage, error)
	Update(db *gorm.DB, pkg *entity.TestPackage) error
	ReplaceTests(db *gorm.DB, pkg *entity.TestPackage, tests []entity.LabTest) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
