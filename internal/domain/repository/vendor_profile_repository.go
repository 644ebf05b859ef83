package repository

import (
	"diagnolab/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.VendorProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.VendorProfile, error)
	FindAll(db *gorm.DB, status entity.ApprovalStatus, limit, offset int) ([]entity.VendorProfile, int64, error)
	Update(db *gorm.DB, profile *entity.VendorProfile) error
}
