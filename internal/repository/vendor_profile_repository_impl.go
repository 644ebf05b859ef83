package repository

import (
	"errors"

	"diagnolab/internal/domain/entity"
	domainRepo "diagnolab/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vendorProfileRepository struct{}

func NewVendorProfileRepository() domainRepo.VendorProfileRepository {
	return &vendorProfileRepository{}
}

func (r *vendorProfileRepository) Create(db *gorm.DB, profile *entity.VendorProfile) error {
	return db.Create(profile).Error
}

func (r *vendorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.VendorProfile, error) {
	var profile entity.VendorProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *vendorProfileRepository) FindAll(db *gorm.DB, status entity.ApprovalStatus, limit, offset int) ([]entity.VendorProfile, int64, error) {
	var profiles []entity.VendorProfile
	var total int64

	query := db.Model(&entity.VendorProfile{})
	if status != "" {
		query = query.Where("approval_status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("User").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

func (r *vendorProfileRepository) Update(db *gorm.DB, profile *entity.VendorProfile) error {
	return db.Save(profile).Error
}
