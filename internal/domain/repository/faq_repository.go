package repository

import (
	"diagnolab/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FaqRepository interface {
	Create(db *gorm.DB, faq *entity.Faq) error
	FindAll(db *gorm.DB) ([]entity.Faq, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Faq, error)
	Update(db *gorm.DB, faq *entity.Faq) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
