package entity

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{"confirmed to completed", BookingStatusConfirmed, BookingStatusCompleted, true},
		{"confirmed to cancelled", BookingStatusConfirmed, BookingStatusCancelled, true},
		{"confirmed to confirmed", BookingStatusConfirmed, BookingStatusConfirmed, false},
		{"completed is terminal", BookingStatusCompleted, BookingStatusCancelled, false},
		{"completed cannot revert", BookingStatusCompleted, BookingStatusConfirmed, false},
		{"cancelled is terminal", BookingStatusCancelled, BookingStatusCompleted, false},
		{"cancelled cannot revert", BookingStatusCancelled, BookingStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			if got := b.CanTransition(tt.to); got != tt.want {
				t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestComplete(t *testing.T) {
	b := &Booking{Status: BookingStatusConfirmed}
	if err := b.Complete(PaymentStatusPaid); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if b.Status != BookingStatusCompleted {
		t.Errorf("Status = %s, want completed", b.Status)
	}
	if b.PaymentStatus != PaymentStatusPaid {
		t.Errorf("PaymentStatus = %s, want paid", b.PaymentStatus)
	}

	// Completing twice must fail
	if err := b.Complete(PaymentStatusPaid); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second Complete() error = %v, want ErrInvalidTransition", err)
	}
}

func TestCompleteRejectsBadPaymentStatus(t *testing.T) {
	b := &Booking{Status: BookingStatusConfirmed}
	if err := b.Complete(PaymentStatus("refunded")); !errors.Is(err, ErrInvalidPaymentMark) {
		t.Fatalf("Complete() error = %v, want ErrInvalidPaymentMark", err)
	}
	if b.Status != BookingStatusConfirmed {
		t.Errorf("Status changed on rejected completion: %s", b.Status)
	}
}

func TestCancel(t *testing.T) {
	b := &Booking{Status: BookingStatusConfirmed}
	if err := b.Cancel("patient did not show up"); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if b.Status != BookingStatusCancelled {
		t.Errorf("Status = %s, want cancelled", b.Status)
	}
	if b.CancellationReason != "patient did not show up" {
		t.Errorf("CancellationReason = %q", b.CancellationReason)
	}
}

func TestCancelRequiresReason(t *testing.T) {
	for _, reason := range []string{"", "   ", "\t\n"} {
		b := &Booking{Status: BookingStatusConfirmed}
		if err := b.Cancel(reason); !errors.Is(err, ErrEmptyCancelReason) {
			t.Errorf("Cancel(%q) error = %v, want ErrEmptyCancelReason", reason, err)
		}
		if b.Status != BookingStatusConfirmed {
			t.Errorf("Status changed on rejected cancel: %s", b.Status)
		}
	}
}

func TestCancelCompletedBooking(t *testing.T) {
	b := &Booking{Status: BookingStatusCompleted}
	if err := b.Cancel("too late"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Cancel() error = %v, want ErrInvalidTransition", err)
	}
}

func TestGroupKey(t *testing.T) {
	id := uuid.New()

	withCoupon := &Booking{ID: id, CouponCode: "SAVE10"}
	if got := withCoupon.GroupKey(); got != "SAVE10" {
		t.Errorf("GroupKey() = %q, want SAVE10", got)
	}

	withoutCoupon := &Booking{ID: id}
	if got := withoutCoupon.GroupKey(); got != id.String() {
		t.Errorf("GroupKey() = %q, want booking id", got)
	}
}

func TestApplyDiscount(t *testing.T) {
	b := &Booking{
		Status:         BookingStatusConfirmed,
		OriginalAmount: decimal.NewFromInt(1000),
	}

	b.ApplyDiscount(DiscountTypeStacked, decimal.NewFromInt(10), decimal.NewFromInt(150), decimal.NewFromInt(850))

	if b.DiscountType != DiscountTypeStacked {
		t.Errorf("DiscountType = %q, want stacked", b.DiscountType)
	}
	if !b.DiscountAmount.Equal(decimal.NewFromInt(150)) {
		t.Errorf("DiscountAmount = %s, want 150", b.DiscountAmount)
	}
	if !b.FinalAmount.Equal(decimal.NewFromInt(850)) {
		t.Errorf("FinalAmount = %s, want 850", b.FinalAmount)
	}
}
