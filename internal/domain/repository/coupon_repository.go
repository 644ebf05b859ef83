package repository

import (
	"diagnolab/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CouponRepository interface {
	Create(db *gorm.DB, coupon *entity.Coupon) error
	FindByCode(db *gorm.DB, code string) (*entity.Coupon, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Coupon, error)
	FindAll(db *gorm.DB, vendorID *uuid.UUID, limit, offset int) ([]entity.Coupon, int64, error)
	Update(db *gorm.DB, coupon *entity.Coupon) error
	// ExpireByCode marks a coupon expired and returns affected rows so
	// callers can tell an already-expired coupon from a missing one.
	ExpireByCode(db *gorm.DB, code string) (int64, error)
}
