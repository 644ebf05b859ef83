package service

import (
	"errors"
	"strings"
	"time"

	"diagnolab/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCouponMismatch = errors.New("entered code does not match the booking's coupon")
	ErrCouponInvalid  = errors.New("coupon is not valid for this order")
	ErrCouponExpired  = errors.New("coupon has expired")
)

// CouponTerms are the discount terms a successful verification grants
type CouponTerms struct {
	Code           string                    `json:"code"`
	DiscountType   entity.CouponDiscountType `json:"discount_type"`
	DiscountValue  decimal.Decimal           `json:"discount_value"`
	DiscountAmount decimal.Decimal           `json:"discount_amount"`
}

// CouponVerifier checks an entered code against the coupon a booking
// was issued with
type CouponVerifier struct {
	now func() time.Time
}

func NewCouponVerifier() *CouponVerifier {
	return &CouponVerifier{now: time.Now}
}

// Verify matches the entered code against the booking's assigned code
// first: a mismatch fails regardless of the coupon's own validity.
// On match the coupon record is checked for expiry, vendor scope,
// validity window and minimum order value.
func (v *CouponVerifier) Verify(entered, assigned string, vendorID uuid.UUID, orderAmount decimal.Decimal, coupon *entity.Coupon) (*CouponTerms, error) {
	if !CodesEqual(entered, assigned) {
		return nil, ErrCouponMismatch
	}

	if coupon == nil {
		return nil, ErrCouponInvalid
	}

	now := v.now()
	if coupon.IsExpired(now) {
		return nil, ErrCouponExpired
	}
	if coupon.VendorID != nil && *coupon.VendorID != vendorID {
		return nil, ErrCouponInvalid
	}
	if !coupon.InValidityWindow(now) {
		return nil, ErrCouponInvalid
	}
	if orderAmount.LessThan(coupon.MinOrderValue) {
		return nil, ErrCouponInvalid
	}

	return &CouponTerms{
		Code:           coupon.Code,
		DiscountType:   coupon.DiscountType,
		DiscountValue:  coupon.DiscountValue,
		DiscountAmount: coupon.DiscountFor(orderAmount),
	}, nil
}

// CodesEqual compares coupon codes after trimming and case-folding
func CodesEqual(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a, b)
}
