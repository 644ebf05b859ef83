package service

import (
	"errors"
	"testing"
	"time"

	"diagnolab/internal/domain/entity"

	"github.com/google/uuid"
)

var verifyNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func fixedVerifier() *CouponVerifier {
	return &CouponVerifier{now: func() time.Time { return verifyNow }}
}

func activeCoupon(vendorID *uuid.UUID) *entity.Coupon {
	until := verifyNow.Add(24 * time.Hour)
	return &entity.Coupon{
		ID:            uuid.New(),
		Code:          "SAVE10",
		VendorID:      vendorID,
		DiscountType:  entity.CouponDiscountFlat,
		DiscountValue: d("100"),
		MinOrderValue: d("500"),
		ValidUntil:    &until,
		Status:        entity.CouponStatusActive,
	}
}

func TestVerifyMatchesBeforeValidity(t *testing.T) {
	v := fixedVerifier()
	vendorID := uuid.New()

	// The entered code names a valid coupon, but the booking was
	// placed with a different one. Mismatch must win.
	coupon := activeCoupon(&vendorID)
	_, err := v.Verify("SAVE10", "OTHER20", vendorID, d("1000"), coupon)
	if !errors.Is(err, ErrCouponMismatch) {
		t.Fatalf("Verify() error = %v, want ErrCouponMismatch", err)
	}

	// Mismatch also wins when the booking has no coupon at all
	_, err = v.Verify("SAVE10", "", vendorID, d("1000"), coupon)
	if !errors.Is(err, ErrCouponMismatch) {
		t.Fatalf("Verify() error = %v, want ErrCouponMismatch", err)
	}
}

func TestVerifyCodeComparison(t *testing.T) {
	v := fixedVerifier()
	vendorID := uuid.New()
	coupon := activeCoupon(&vendorID)

	tests := []struct {
		name    string
		entered string
	}{
		{"exact match", "SAVE10"},
		{"case insensitive", "save10"},
		{"surrounding whitespace", "  SAVE10  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms, err := v.Verify(tt.entered, "SAVE10", vendorID, d("1000"), coupon)
			if err != nil {
				t.Fatalf("Verify(%q) error = %v", tt.entered, err)
			}
			if terms.Code != "SAVE10" {
				t.Errorf("terms.Code = %q, want SAVE10", terms.Code)
			}
			if !terms.DiscountAmount.Equal(d("100")) {
				t.Errorf("DiscountAmount = %s, want 100", terms.DiscountAmount)
			}
		})
	}
}

func TestVerifyRejectsInvalidCoupons(t *testing.T) {
	v := fixedVerifier()
	vendorID := uuid.New()
	otherVendor := uuid.New()

	expired := activeCoupon(&vendorID)
	expired.Status = entity.CouponStatusExpired

	pastWindow := activeCoupon(&vendorID)
	past := verifyNow.Add(-time.Hour)
	pastWindow.ValidUntil = &past

	notYetValid := activeCoupon(&vendorID)
	future := verifyNow.Add(time.Hour)
	notYetValid.ValidFrom = &future

	wrongVendor := activeCoupon(&otherVendor)

	tests := []struct {
		name        string
		coupon      *entity.Coupon
		orderAmount string
		wantErr     error
	}{
		{"missing coupon record", nil, "1000", ErrCouponInvalid},
		{"expired status", expired, "1000", ErrCouponExpired},
		{"validity window passed", pastWindow, "1000", ErrCouponExpired},
		{"validity window not started", notYetValid, "1000", ErrCouponInvalid},
		{"scoped to another vendor", wrongVendor, "1000", ErrCouponInvalid},
		{"order below minimum", activeCoupon(&vendorID), "499", ErrCouponInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify("SAVE10", "SAVE10", vendorID, d(tt.orderAmount), tt.coupon)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Verify() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestVerifyPercentCoupon(t *testing.T) {
	v := fixedVerifier()
	vendorID := uuid.New()

	coupon := activeCoupon(&vendorID)
	coupon.DiscountType = entity.CouponDiscountPercent
	coupon.DiscountValue = d("15")

	terms, err := v.Verify("SAVE10", "SAVE10", vendorID, d("800"), coupon)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if !terms.DiscountAmount.Equal(d("120")) {
		t.Errorf("DiscountAmount = %s, want 120", terms.DiscountAmount)
	}
}

func TestVerifyGlobalCoupon(t *testing.T) {
	v := fixedVerifier()

	// A coupon without a vendor scope works at any lab
	coupon := activeCoupon(nil)
	if _, err := v.Verify("SAVE10", "SAVE10", uuid.New(), d("1000"), coupon); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
}

func TestCodesEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"SAVE10", "SAVE10", true},
		{"save10", "SAVE10", true},
		{" SAVE10 ", "SAVE10", true},
		{"SAVE10", "SAVE20", false},
		{"", "SAVE10", false},
		{"", "", false},
		{"   ", "SAVE10", false},
	}

	for _, tt := range tests {
		if got := CodesEqual(tt.a, tt.b); got != tt.want {
			t.Errorf("CodesEqual(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
