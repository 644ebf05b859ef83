package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateCouponRequest struct {
	Code          string          `json:"code" validate:"required,min=3,max=50"`
	VendorID      *uuid.UUID      `json:"vendor_id" validate:"omitempty"`
	DiscountType  string          `json:"discount_type" validate:"required,oneof=flat percent"`
	DiscountValue decimal.Decimal `json:"discount_value" validate:"required"`
	MinOrderValue decimal.Decimal `json:"min_order_value"`
	ValidFrom     string          `json:"valid_from" validate:"omitempty"`  // Format: RFC3339
	ValidUntil    string          `json:"valid_until" validate:"omitempty"` // Format: RFC3339
}

// Response DTOs

type CouponResponse struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	VendorID      *uuid.UUID      `json:"vendor_id,omitempty"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	MinOrderValue decimal.Decimal `json:"min_order_value"`
	ValidFrom     *time.Time      `json:"valid_from,omitempty"`
	ValidUntil    *time.Time      `json:"valid_until,omitempty"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CouponListResponse struct {
	Coupons []CouponResponse `json:"coupons"`
}

type VerifyCouponResponse struct {
	Valid          bool            `json:"valid"`
	Code           string          `json:"code"`
	DiscountType   string          `json:"discount_type"`
	DiscountValue  decimal.Decimal `json:"discount_value"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	OrderAmount    decimal.Decimal `json:"order_amount"`
}
