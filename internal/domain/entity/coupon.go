package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CouponStatus represents the lifecycle state of a coupon
type CouponStatus string

const (
	CouponStatusActive  CouponStatus = "active"
	CouponStatusExpired CouponStatus = "expired"
)

// CouponDiscountType selects how DiscountValue is interpreted
type CouponDiscountType string

const (
	CouponDiscountFlat    CouponDiscountType = "flat"
	CouponDiscountPercent CouponDiscountType = "percent"
)

// Coupon is a discount code tied to a booking group. It is issued at
// checkout or by an admin, scoped to a vendor, and marked expired when
// its booking group completes or cancels.
type Coupon struct {
	ID            uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code          string             `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	VendorID      *uuid.UUID         `gorm:"type:uuid;index" json:"vendor_id,omitempty"`
	DiscountType  CouponDiscountType `gorm:"type:varchar(20);not null" json:"discount_type"`
	DiscountValue decimal.Decimal    `gorm:"type:decimal(10,2);not null" json:"discount_value"`
	MinOrderValue decimal.Decimal    `gorm:"type:decimal(10,2);not null;default:0" json:"min_order_value"`
	ValidFrom     *time.Time         `gorm:"type:timestamptz" json:"valid_from,omitempty"`
	ValidUntil    *time.Time         `gorm:"type:timestamptz" json:"valid_until,omitempty"`
	Status        CouponStatus       `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt     time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Vendor *VendorProfile `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
}

func (Coupon) TableName() string {
	return "coupons"
}

// IsExpired checks the expiry flag and the validity window end
func (c *Coupon) IsExpired(now time.Time) bool {
	if c.Status == CouponStatusExpired {
		return true
	}
	return c.ValidUntil != nil && now.After(*c.ValidUntil)
}

// InValidityWindow checks the coupon may be redeemed at the given time
func (c *Coupon) InValidityWindow(now time.Time) bool {
	if c.ValidFrom != nil && now.Before(*c.ValidFrom) {
		return false
	}
	if c.ValidUntil != nil && now.After(*c.ValidUntil) {
		return false
	}
	return true
}

// Expire marks the coupon as spent
func (c *Coupon) Expire() {
	c.Status = CouponStatusExpired
}

// DiscountFor computes the discount amount this coupon grants on the
// given order amount
func (c *Coupon) DiscountFor(orderAmount decimal.Decimal) decimal.Decimal {
	if c.DiscountType == CouponDiscountPercent {
		return orderAmount.Mul(c.DiscountValue).Div(decimal.NewFromInt(100)).Round(2)
	}
	return c.DiscountValue
}
