package repository

import (
	"diagnolab/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganRepository interface {
	Create(db *gorm.DB, organ *entity.Organ) error
	FindAll(db *gorm.DB, limit, offset int) ([]entity.Organ, int64, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Organ, error)
	Update(db *gorm.DB, organ *entity.Organ) error
	Delete(db *gorm.DB, id uuid.UUID) error
	CountTests(db *gorm.DB, organID uuid.UUID) (int64, error)
}
