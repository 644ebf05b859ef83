package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var couponNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestCouponIsExpired(t *testing.T) {
	past := couponNow.Add(-time.Hour)
	future := couponNow.Add(time.Hour)

	tests := []struct {
		name   string
		coupon Coupon
		want   bool
	}{
		{"active without window", Coupon{Status: CouponStatusActive}, false},
		{"expired status", Coupon{Status: CouponStatusExpired}, true},
		{"valid until in future", Coupon{Status: CouponStatusActive, ValidUntil: &future}, false},
		{"valid until passed", Coupon{Status: CouponStatusActive, ValidUntil: &past}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coupon.IsExpired(couponNow); got != tt.want {
				t.Errorf("IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCouponInValidityWindow(t *testing.T) {
	past := couponNow.Add(-time.Hour)
	future := couponNow.Add(time.Hour)

	tests := []struct {
		name   string
		coupon Coupon
		want   bool
	}{
		{"no window", Coupon{}, true},
		{"inside window", Coupon{ValidFrom: &past, ValidUntil: &future}, true},
		{"before window", Coupon{ValidFrom: &future}, false},
		{"after window", Coupon{ValidUntil: &past}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coupon.InValidityWindow(couponNow); got != tt.want {
				t.Errorf("InValidityWindow() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCouponDiscountFor(t *testing.T) {
	flat := Coupon{DiscountType: CouponDiscountFlat, DiscountValue: decimal.NewFromInt(100)}
	if got := flat.DiscountFor(decimal.NewFromInt(800)); !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("flat DiscountFor = %s, want 100", got)
	}

	percent := Coupon{DiscountType: CouponDiscountPercent, DiscountValue: decimal.NewFromInt(15)}
	if got := percent.DiscountFor(decimal.NewFromInt(800)); !got.Equal(decimal.NewFromInt(120)) {
		t.Errorf("percent DiscountFor = %s, want 120", got)
	}
}

func TestCouponExpire(t *testing.T) {
	c := Coupon{Status: CouponStatusActive}
	c.Expire()
	if c.Status != CouponStatusExpired {
		t.Errorf("Status = %s, want expired", c.Status)
	}
}
