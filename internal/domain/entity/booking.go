package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state attached on completion
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Discount type recorded on a completed booking
const (
	DiscountTypeManual  = "manual"
	DiscountTypeCoupon  = "coupon"
	DiscountTypeStacked = "stacked"
)

var (
	ErrInvalidTransition  = errors.New("invalid booking status transition")
	ErrEmptyCancelReason  = errors.New("cancellation reason must not be empty")
	ErrInvalidPaymentMark = errors.New("invalid payment status")
)

// Booking represents one test line of a patient order at a vendor lab.
// Bookings placed together in one checkout share a coupon code and are
// grouped back into a single logical order at read time. Bookings are
// never hard-deleted.
type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	VendorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"vendor_id"`

	// Patient snapshot taken at checkout so later profile edits do not
	// rewrite history
	PatientName    string `gorm:"type:varchar(255);not null" json:"patient_name"`
	PatientContact string `gorm:"type:varchar(20);not null" json:"patient_contact"`
	PatientEmail   string `gorm:"type:varchar(255);not null" json:"patient_email"`

	AppointmentDate time.Time     `gorm:"type:date;not null;index" json:"appointment_date"`
	AppointmentTime string        `gorm:"type:varchar(10);not null" json:"appointment_time"`
	Status          BookingStatus `gorm:"type:varchar(20);not null;default:'confirmed';index" json:"status"`
	PaymentStatus   PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	HomeSample      bool          `gorm:"not null;default:false" json:"home_sample"`

	CouponCode     string          `gorm:"type:varchar(50);index" json:"coupon_code,omitempty"`
	OriginalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"original_amount"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"discount_amount"`
	FinalAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"final_amount"`
	DiscountType   string          `gorm:"type:varchar(20)" json:"discount_type,omitempty"`
	DiscountValue  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"discount_value"`

	CancellationReason string    `gorm:"type:text" json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile  `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Vendor  VendorProfile   `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	Items   []BookingItem   `gorm:"foreignKey:BookingID" json:"items,omitempty"`
	Reports []BookingReport `gorm:"foreignKey:BookingID" json:"reports,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// BookingItem is a test line-item snapshot on a booking
type BookingItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingID uuid.UUID       `gorm:"type:uuid;not null;index" json:"booking_id"`
	TestID    *uuid.UUID      `gorm:"type:uuid;index" json:"test_id,omitempty"`
	TestName  string          `gorm:"type:varchar(255);not null" json:"test_name"`
	OrganName string          `gorm:"type:varchar(100);not null" json:"organ_name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}

func (BookingItem) TableName() string {
	return "booking_items"
}

// BookingReport is a result file submitted inline on completion
type BookingReport struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingID   uuid.UUID `gorm:"type:uuid;not null;index" json:"booking_id"`
	FileName    string    `gorm:"type:varchar(255);not null" json:"file_name"`
	ContentType string    `gorm:"type:varchar(100);not null" json:"content_type"`
	Data        []byte    `gorm:"type:bytea;not null" json:"-"`
	UploadedAt  time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (BookingReport) TableName() string {
	return "booking_reports"
}

// IsConfirmed checks if booking is in its initial state
func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingStatusConfirmed
}

// IsCompleted checks if booking reached its completed terminal state
func (b *Booking) IsCompleted() bool {
	return b.Status == BookingStatusCompleted
}

// IsCancelled checks if booking reached its cancelled terminal state
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// CanTransition reports whether moving to the target status is legal.
// Only confirmed -> completed and confirmed -> cancelled are accepted;
// both targets are terminal.
func (b *Booking) CanTransition(to BookingStatus) bool {
	if b.Status != BookingStatusConfirmed {
		return false
	}
	return to == BookingStatusCompleted || to == BookingStatusCancelled
}

// Complete transitions the booking to completed and attaches the
// payment status selected by the vendor
func (b *Booking) Complete(payment PaymentStatus) error {
	if payment != PaymentStatusPending && payment != PaymentStatusPaid {
		return ErrInvalidPaymentMark
	}
	if !b.CanTransition(BookingStatusCompleted) {
		return ErrInvalidTransition
	}
	b.Status = BookingStatusCompleted
	b.PaymentStatus = payment
	return nil
}

// Cancel transitions the booking to cancelled. A non-empty reason is
// required.
func (b *Booking) Cancel(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrEmptyCancelReason
	}
	if !b.CanTransition(BookingStatusCancelled) {
		return ErrInvalidTransition
	}
	b.Status = BookingStatusCancelled
	b.CancellationReason = reason
	return nil
}

// ApplyDiscount records a computed discount breakdown on the booking
func (b *Booking) ApplyDiscount(discountType string, value, discountAmount, finalAmount decimal.Decimal) {
	b.DiscountType = discountType
	b.DiscountValue = value
	b.DiscountAmount = discountAmount
	b.FinalAmount = finalAmount
}

// GroupKey identifies the logical multi-test order a booking belongs
// to: the shared coupon code, or the booking's own id when none is set
func (b *Booking) GroupKey() string {
	if b.CouponCode != "" {
		return b.CouponCode
	}
	return b.ID.String()
}
