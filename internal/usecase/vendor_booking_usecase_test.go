package usecase

import (
	"testing"

	"diagnolab/internal/delivery/dto"
	"diagnolab/internal/domain/entity"
	"diagnolab/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func amount(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func confirmedBooking(couponCode, originalAmount string) *entity.Booking {
	return &entity.Booking{
		ID:             uuid.New(),
		Status:         entity.BookingStatusConfirmed,
		CouponCode:     couponCode,
		OriginalAmount: amount(originalAmount),
	}
}

func TestSettleCompletionWithoutCouponSkipsExpiry(t *testing.T) {
	booking := confirmedBooking("SAVE10", "1000")
	req := &dto.CompleteBookingRequest{
		PaymentStatus:         string(entity.PaymentStatusPaid),
		ManualDiscountPercent: amount("10"),
	}

	expire, err := settleCompletion(booking, req, nil)
	if err != nil {
		t.Fatalf("settleCompletion() error = %v", err)
	}
	if expire {
		t.Error("expire = true for a couponless completion, want false")
	}
	if !booking.IsCompleted() {
		t.Errorf("Status = %s, want completed", booking.Status)
	}
	if booking.PaymentStatus != entity.PaymentStatusPaid {
		t.Errorf("PaymentStatus = %s, want paid", booking.PaymentStatus)
	}
	if booking.DiscountType != entity.DiscountTypeManual {
		t.Errorf("DiscountType = %s, want manual", booking.DiscountType)
	}
	if !booking.FinalAmount.Equal(amount("900")) {
		t.Errorf("FinalAmount = %s, want 900", booking.FinalAmount)
	}
}

func TestSettleCompletionWithCouponExpires(t *testing.T) {
	booking := confirmedBooking("SAVE10", "1000")
	req := &dto.CompleteBookingRequest{
		PaymentStatus:         string(entity.PaymentStatusPaid),
		ManualDiscountPercent: amount("10"),
	}
	terms := &service.CouponTerms{
		Code:           "SAVE10",
		DiscountType:   entity.CouponDiscountFlat,
		DiscountValue:  amount("50"),
		DiscountAmount: amount("50"),
	}

	expire, err := settleCompletion(booking, req, terms)
	if err != nil {
		t.Fatalf("settleCompletion() error = %v", err)
	}
	if !expire {
		t.Error("expire = false after redeeming a coupon, want true")
	}
	if booking.DiscountType != entity.DiscountTypeStacked {
		t.Errorf("DiscountType = %s, want stacked", booking.DiscountType)
	}
	if !booking.DiscountAmount.Equal(amount("150")) {
		t.Errorf("DiscountAmount = %s, want 150", booking.DiscountAmount)
	}
	if !booking.FinalAmount.Equal(amount("850")) {
		t.Errorf("FinalAmount = %s, want 850", booking.FinalAmount)
	}
}

func TestSettleCompletionCouponOnlyRecordsCouponAmount(t *testing.T) {
	booking := confirmedBooking("SAVE10", "800")
	req := &dto.CompleteBookingRequest{PaymentStatus: string(entity.PaymentStatusPending)}
	terms := &service.CouponTerms{
		Code:           "SAVE10",
		DiscountType:   entity.CouponDiscountFlat,
		DiscountValue:  amount("100"),
		DiscountAmount: amount("100"),
	}

	expire, err := settleCompletion(booking, req, terms)
	if err != nil {
		t.Fatalf("settleCompletion() error = %v", err)
	}
	if !expire {
		t.Error("expire = false after redeeming a coupon, want true")
	}
	if booking.DiscountType != entity.DiscountTypeCoupon {
		t.Errorf("DiscountType = %s, want coupon", booking.DiscountType)
	}
	if !booking.DiscountValue.Equal(amount("100")) {
		t.Errorf("DiscountValue = %s, want 100", booking.DiscountValue)
	}
}

func TestSettleCompletionRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		booking *entity.Booking
		req     *dto.CompleteBookingRequest
	}{
		{
			name:    "invalid payment status",
			booking: confirmedBooking("", "500"),
			req:     &dto.CompleteBookingRequest{PaymentStatus: "refunded"},
		},
		{
			name: "already completed",
			booking: &entity.Booking{
				ID:             uuid.New(),
				Status:         entity.BookingStatusCompleted,
				OriginalAmount: amount("500"),
			},
			req: &dto.CompleteBookingRequest{PaymentStatus: string(entity.PaymentStatusPaid)},
		},
		{
			name:    "manual percent out of range",
			booking: confirmedBooking("", "500"),
			req: &dto.CompleteBookingRequest{
				PaymentStatus:         string(entity.PaymentStatusPaid),
				ManualDiscountPercent: amount("120"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := tt.booking.Status
			expire, err := settleCompletion(tt.booking, tt.req, nil)
			if err == nil {
				t.Fatal("settleCompletion() expected error")
			}
			if expire {
				t.Error("expire = true on failed settlement, want false")
			}
			if tt.booking.Status != status {
				t.Errorf("Status changed to %s on failed settlement", tt.booking.Status)
			}
		})
	}
}

func TestExpireAfterCancel(t *testing.T) {
	cancelled := confirmedBooking("SAVE10", "500")
	cancelled.Status = entity.BookingStatusCancelled

	confirmedSibling := confirmedBooking("SAVE10", "300")
	settledSibling := confirmedBooking("SAVE10", "300")
	settledSibling.Status = entity.BookingStatusCompleted

	tests := []struct {
		name  string
		group []entity.Booking
		want  bool
	}{
		{"confirmed sibling remains", []entity.Booking{*cancelled, *confirmedSibling}, false},
		{"all siblings settled", []entity.Booking{*cancelled, *settledSibling}, true},
		{"own row only", []entity.Booking{*cancelled}, true},
		{"empty group", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expireAfterCancel(cancelled, tt.group); got != tt.want {
				t.Errorf("expireAfterCancel() = %v, want %v", got, tt.want)
			}
		})
	}
}
