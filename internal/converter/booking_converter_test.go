package converter

import (
	"testing"

	"diagnolab/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func booking(coupon string, original, discount, final string) entity.Booking {
	return entity.Booking{
		ID:             uuid.New(),
		CouponCode:     coupon,
		OriginalAmount: d(original),
		DiscountAmount: d(discount),
		FinalAmount:    d(final),
	}
}

func TestGroupBookingsByCouponCode(t *testing.T) {
	bookings := []entity.Booking{
		booking("SAVE10", "300", "30", "270"),
		booking("SAVE10", "700", "70", "630"),
		booking("OTHER20", "500", "100", "400"),
	}

	groups := GroupBookings(bookings)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	first := groups[0]
	if first.GroupKey != "SAVE10" {
		t.Errorf("GroupKey = %q, want SAVE10", first.GroupKey)
	}
	if len(first.Bookings) != 2 {
		t.Errorf("group SAVE10 has %d bookings, want 2", len(first.Bookings))
	}
	if !first.TotalOriginalAmount.Equal(d("1000")) {
		t.Errorf("TotalOriginalAmount = %s, want 1000", first.TotalOriginalAmount)
	}
	if !first.TotalDiscountAmount.Equal(d("100")) {
		t.Errorf("TotalDiscountAmount = %s, want 100", first.TotalDiscountAmount)
	}
	if !first.TotalFinalAmount.Equal(d("900")) {
		t.Errorf("TotalFinalAmount = %s, want 900", first.TotalFinalAmount)
	}

	second := groups[1]
	if second.GroupKey != "OTHER20" {
		t.Errorf("GroupKey = %q, want OTHER20", second.GroupKey)
	}
	if len(second.Bookings) != 1 {
		t.Errorf("group OTHER20 has %d bookings, want 1", len(second.Bookings))
	}
}

func TestGroupBookingsWithoutCoupon(t *testing.T) {
	// Bookings without a coupon code each form their own group keyed
	// by booking id
	a := booking("", "200", "0", "200")
	b := booking("", "300", "0", "300")

	groups := GroupBookings([]entity.Booking{a, b})

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].GroupKey != a.ID.String() {
		t.Errorf("GroupKey = %q, want %q", groups[0].GroupKey, a.ID.String())
	}
	if groups[1].GroupKey != b.ID.String() {
		t.Errorf("GroupKey = %q, want %q", groups[1].GroupKey, b.ID.String())
	}
	if groups[0].CouponCode != "" {
		t.Errorf("CouponCode = %q, want empty", groups[0].CouponCode)
	}
}

func TestGroupBookingsPreservesOrder(t *testing.T) {
	bookings := []entity.Booking{
		booking("B", "100", "0", "100"),
		booking("A", "100", "0", "100"),
		booking("B", "100", "0", "100"),
	}

	groups := GroupBookings(bookings)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].GroupKey != "B" || groups[1].GroupKey != "A" {
		t.Errorf("group order = [%s, %s], want [B, A]", groups[0].GroupKey, groups[1].GroupKey)
	}
}

func TestGroupBookingsEmpty(t *testing.T) {
	if groups := GroupBookings(nil); len(groups) != 0 {
		t.Errorf("got %d groups for empty input, want 0", len(groups))
	}
}

func TestBookingToResponseFormatsDate(t *testing.T) {
	b := booking("", "100", "0", "100")
	b.AppointmentDate = b.CreatedAt

	resp := BookingToResponse(&b)
	if resp == nil {
		t.Fatal("BookingToResponse returned nil")
	}
	if resp.AppointmentDate != b.AppointmentDate.Format("2006-01-02") {
		t.Errorf("AppointmentDate = %q", resp.AppointmentDate)
	}
	if BookingToResponse(nil) != nil {
		t.Error("BookingToResponse(nil) should return nil")
	}
}
