package repository

import (
	"errors"

	"diagnolab/internal/domain/entity"
	domainRepo "diagnolab/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type couponRepository struct{}

func NewCouponRepository() domainRepo.CouponRepository {
	return &couponRepository{}
}

func (r *couponRepository) Create(db *gorm.DB, coupon *entity.Coupon) error {
	return db.Create(coupon).Error
}

func (r *couponRepository) FindByCode(db *gorm.DB, code string) (*entity.Coupon, error) {
	var coupon entity.Coupon
	err := db.Where("LOWER(code) = LOWER(?)", code).First(&coupon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Coupon, error) {
	var coupon entity.Coupon
	err := db.Where("id = ?", id).First(&coupon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) FindAll(db *gorm.DB, vendorID *uuid.UUID, limit, offset int) ([]entity.Coupon, int64, error) {
	var coupons []entity.Coupon
	var total int64

	query := db.Model(&entity.Coupon{})
	if vendorID != nil {
		query = query.Where("vendor_id = ?", *vendorID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&coupons).Error
	if err != nil {
		return nil, 0, err
	}

	return coupons, total, nil
}

func (r *couponRepository) Update(db *gorm.DB, coupon *entity.Coupon) error {
	return db.Save(coupon).Error
}

// ExpireByCode only touches active coupons so a double expiry reports
// zero affected rows instead of silently rewriting timestamps.
func (r *couponRepository) ExpireByCode(db *gorm.DB, code string) (int64, error) {
	result := db.Model(&entity.Coupon{}).
		Where("LOWER(code) = LOWER(?) AND status = ?", code, entity.CouponStatusActive).
		Update("status", entity.CouponStatusExpired)
	return result.RowsAffected, result.Error
}
