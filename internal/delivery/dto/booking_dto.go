package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CheckoutRequest struct {
	VendorID        uuid.UUID   `json:"vendor_id" validate:"required"`
	TestIDs         []uuid.UUID `json:"test_ids" validate:"required,min=1,dive,required"`
	PatientName     string      `json:"patient_name" validate:"required,min=2"`
	PatientContact  string      `json:"patient_contact" validate:"required,min=10,max=20"`
	PatientEmail    string      `json:"patient_email" validate:"required,email"`
	AppointmentDate string      `json:"appointment_date" validate:"required"` // Format: YYYY-MM-DD
	AppointmentTime string      `json:"appointment_time" validate:"required"` // Format: HH:MM
	HomeSample      bool        `json:"home_sample"`
	CouponCode      string      `json:"coupon_code" validate:"omitempty,min=3,max=50"`
}

type ReportUpload struct {
	FileName    string `json:"file_name" validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
	Data        string `json:"data" validate:"required"` // base64-encoded file content
}

type CompleteBookingRequest struct {
	PaymentStatus         string          `json:"payment_status" validate:"required,oneof=pending paid"`
	ManualDiscountPercent decimal.Decimal `json:"manual_discount_percent"`
	CouponCode            string          `json:"coupon_code" validate:"omitempty,min=3,max=50"`
	HomeSample            *bool           `json:"home_sample,omitempty"`
	Reports               []ReportUpload  `json:"reports" validate:"omitempty,dive"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

type VerifyCouponRequest struct {
	BookingID  uuid.UUID `json:"booking_id" validate:"required"`
	CouponCode string    `json:"coupon_code" validate:"required"`
}

// Response DTOs

type BookingItemResponse struct {
	TestID    *uuid.UUID      `json:"test_id,omitempty"`
	TestName  string          `json:"test_name"`
	OrganName string          `json:"organ_name"`
	Price     decimal.Decimal `json:"price"`
}

type ReportResponse struct {
	ID          int64     `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type BookingResponse struct {
	ID                 uuid.UUID             `json:"id"`
	PatientID          uuid.UUID             `json:"patient_id"`
	VendorID           uuid.UUID             `json:"vendor_id"`
	LabName            string                `json:"lab_name,omitempty"`
	PatientName        string                `json:"patient_name"`
	PatientContact     string                `json:"patient_contact"`
	PatientEmail       string                `json:"patient_email"`
	AppointmentDate    string                `json:"appointment_date"`
	AppointmentTime    string                `json:"appointment_time"`
	Status             string                `json:"status"`
	PaymentStatus      string                `json:"payment_status"`
	HomeSample         bool                  `json:"home_sample"`
	CouponCode         string                `json:"coupon_code,omitempty"`
	OriginalAmount     decimal.Decimal       `json:"original_amount"`
	DiscountAmount     decimal.Decimal       `json:"discount_amount"`
	FinalAmount        decimal.Decimal       `json:"final_amount"`
	DiscountType       string                `json:"discount_type,omitempty"`
	DiscountValue      decimal.Decimal       `json:"discount_value"`
	CancellationReason string                `json:"cancellation_reason,omitempty"`
	Items              []BookingItemResponse `json:"items"`
	Reports            []ReportResponse      `json:"reports,omitempty"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// BookingGroupResponse presents bookings placed together as one
// logical multi-test order
type BookingGroupResponse struct {
	GroupKey            string            `json:"group_key"`
	CouponCode          string            `json:"coupon_code,omitempty"`
	Bookings            []BookingResponse `json:"bookings"`
	TotalOriginalAmount decimal.Decimal   `json:"total_original_amount"`
	TotalDiscountAmount decimal.Decimal   `json:"total_discount_amount"`
	TotalFinalAmount    decimal.Decimal   `json:"total_final_amount"`
}

type BookingGroupListResponse struct {
	Groups []BookingGroupResponse `json:"groups"`
	Total  int                    `json:"total"`
}

type CheckoutResponse struct {
	Bookings            []BookingResponse `json:"bookings"`
	CouponCode          string            `json:"coupon_code,omitempty"`
	TotalOriginalAmount decimal.Decimal   `json:"total_original_amount"`
}
