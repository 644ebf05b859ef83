package service

import (
	"errors"

	"diagnolab/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount    = errors.New("amount must not be negative")
	ErrPercentOutOfRange = errors.New("manual discount percent must be between 0 and 100")
)

var oneHundred = decimal.NewFromInt(100)

// DiscountBreakdown is the result of stacking a manual discount percent
// with a verified coupon discount on one order amount.
type DiscountBreakdown struct {
	OriginalAmount decimal.Decimal `json:"original_amount"`
	ManualPercent  decimal.Decimal `json:"manual_percent"`
	ManualAmount   decimal.Decimal `json:"manual_amount"`
	CouponAmount   decimal.Decimal `json:"coupon_amount"`
	TotalDiscount  decimal.Decimal `json:"total_discount"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
}

// AggregateDiscount combines a manual discount percent and a coupon
// discount amount into one payable figure. The combined discount is
// capped at the original amount so the final amount never goes
// negative; the invariant final = original - total still holds after
// the cap because the cap is applied to the recorded total.
func AggregateDiscount(original, manualPercent, couponAmount decimal.Decimal) (*DiscountBreakdown, error) {
	if original.IsNegative() || couponAmount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if manualPercent.IsNegative() || manualPercent.GreaterThan(oneHundred) {
		return nil, ErrPercentOutOfRange
	}

	manualAmount := original.Mul(manualPercent).Div(oneHundred).Round(2)
	total := manualAmount.Add(couponAmount)
	if total.GreaterThan(original) {
		total = original
	}

	return &DiscountBreakdown{
		OriginalAmount: original,
		ManualPercent:  manualPercent,
		ManualAmount:   manualAmount,
		CouponAmount:   couponAmount,
		TotalDiscount:  total,
		FinalAmount:    original.Sub(total),
	}, nil
}

// HasDiscount reports whether any discount was applied
func (d *DiscountBreakdown) HasDiscount() bool {
	return d.TotalDiscount.IsPositive()
}

// Type classifies the breakdown for the booking's discount_type field
func (d *DiscountBreakdown) Type() string {
	manual := d.ManualAmount.IsPositive()
	coupon := d.CouponAmount.IsPositive()
	switch {
	case manual && coupon:
		return entity.DiscountTypeStacked
	case manual:
		return entity.DiscountTypeManual
	case coupon:
		return entity.DiscountTypeCoupon
	default:
		return ""
	}
}
