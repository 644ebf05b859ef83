package converter

import (
	"diagnolab/internal/delivery/dto"
	"diagnolab/internal/domain/entity"
)

// CouponToResponse converts a Coupon entity to CouponResponse DTO
func CouponToResponse(coupon *entity.Coupon) *dto.CouponResponse {
	if coupon == nil {
		return nil
	}

	return &dto.CouponResponse{
		ID:            coupon.ID,
		Code:          coupon.Code,
		VendorID:      coupon.VendorID,
		DiscountType:  string(coupon.DiscountType),
		DiscountValue: coupon.DiscountValue,
		MinOrderValue: coupon.MinOrderValue,
		ValidFrom:     coupon.ValidFrom,
		ValidUntil:    coupon.ValidUntil,
		Status:        string(coupon.Status),
		CreatedAt:     coupon.CreatedAt,
		UpdatedAt:     coupon.UpdatedAt,
	}
}

// CouponsToResponses converts a slice of Coupon entities
func CouponsToResponses(coupons []entity.Coupon) []dto.CouponResponse {
	responses := make([]dto.CouponResponse, len(coupons))
	for i, coupon := range coupons {
		resp := CouponToResponse(&coupon)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
