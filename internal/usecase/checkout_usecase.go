package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"diagnolab/internal/converter"
	"diagnolab/internal/delivery/dto"
	"diagnolab/internal/domain/entity"
	"diagnolab/internal/domain/repository"
	"diagnolab/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrVendorNotAvailable    = errors.New("vendor not found or not approved")
	ErrTestNotFound          = errors.New("one or more tests not found")
	ErrTestUnavailable       = errors.New("one or more tests are not available at this vendor")
	ErrInvalidAppointment    = errors.New("invalid appointment date or time")
	ErrAppointmentInPast     = errors.New("appointment date must not be in the past")
	ErrCouponNotApplicable   = errors.New("coupon cannot be applied to this order")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrPatientProfileMissing = errors.New("patient profile not found")
)

type CheckoutUsecase interface {
	Checkout(ctx context.Context, patientID uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	GetMyBookings(ctx context.Context, patientID uuid.UUID) (*dto.BookingListResponse, error)
	GetMyBookingsGrouped(ctx context.Context, patientID uuid.UUID) (*dto.BookingGroupListResponse, error)
	GetMyBooking(ctx context.Context, patientID, bookingID uuid.UUID) (*dto.BookingResponse, error)
}

type checkoutUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	bookingRepo        repository.BookingRepository
	labTestRepo        repository.LabTestRepository
	couponRepo         repository.CouponRepository
	vendorProfileRepo  repository.VendorProfileRepository
	patientProfileRepo repository.PatientProfileRepository
	auditService       service.AuditService
}

func NewCheckoutUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	labTestRepo repository.LabTestRepository,
	couponRepo repository.CouponRepository,
	vendorProfileRepo repository.VendorProfileRepository,
	patientProfileRepo repository.PatientProfileRepository,
	auditService service.AuditService,
) CheckoutUsecase {
	return &checkoutUsecase{
		db:                 db,
		log:                log,
		bookingRepo:        bookingRepo,
		labTestRepo:        labTestRepo,
		couponRepo:         couponRepo,
		vendorProfileRepo:  vendorProfileRepo,
		patientProfileRepo: patientProfileRepo,
		auditService:       auditService,
	}
}

// Checkout creates one confirmed booking per selected test in a single
// transaction. Bookings placed together share the checkout's coupon
// code so they can be folded back into one logical order at read time.
func (u *checkoutUsecase) Checkout(ctx context.Context, patientID uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	appointmentDate, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidAppointment
	}
	if _, err := time.Parse("15:04", req.AppointmentTime); err != nil {
		return nil, ErrInvalidAppointment
	}
	today := time.Now().Truncate(24 * time.Hour)
	if appointmentDate.Before(today) {
		return nil, ErrAppointmentInPast
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientProfileRepo.FindByUserID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientProfileMissing
	}

	vendor, err := u.vendorProfileRepo.FindByUserID(tx, req.VendorID)
	if err != nil {
		u.log.Warnf("Failed to find vendor profile: %+v", err)
		return nil, err
	}
	if vendor == nil || !vendor.IsApproved() {
		return nil, ErrVendorNotAvailable
	}

	tests, err := u.labTestRepo.FindByIDs(tx, req.TestIDs)
	if err != nil {
		u.log.Warnf("Failed to find tests: %+v", err)
		return nil, err
	}
	if len(tests) != len(req.TestIDs) {
		return nil, ErrTestNotFound
	}
	for i := range tests {
		test := &tests[i]
		if test.Status != entity.TestStatusActive {
			return nil, ErrTestUnavailable
		}
		// Admin catalog entries have no owning vendor and are bookable
		// at any lab
		if test.VendorID != nil && *test.VendorID != req.VendorID {
			return nil, ErrTestUnavailable
		}
	}

	couponCode := strings.TrimSpace(req.CouponCode)
	if couponCode != "" {
		coupon, err := u.couponRepo.FindByCode(tx, couponCode)
		if err != nil {
			u.log.Warnf("Failed to find coupon: %+v", err)
			return nil, err
		}
		now := time.Now()
		if coupon == nil || coupon.IsExpired(now) || !coupon.InValidityWindow(now) {
			return nil, ErrCouponNotApplicable
		}
		if coupon.VendorID != nil && *coupon.VendorID != req.VendorID {
			return nil, ErrCouponNotApplicable
		}
		couponCode = coupon.Code
	}

	// One booking row per test. The discount is settled by the vendor
	// at completion, so checkout records the undiscounted amounts.
	bookings := make([]entity.Booking, 0, len(tests))
	bookingIDs := make([]string, 0, len(tests))
	totalOriginal := decimal.Zero

	for i := range tests {
		test := &tests[i]
		price := test.PriceMin

		booking := entity.Booking{
			PatientID:       patient.UserID,
			VendorID:        req.VendorID,
			PatientName:     req.PatientName,
			PatientContact:  req.PatientContact,
			PatientEmail:    req.PatientEmail,
			AppointmentDate: appointmentDate,
			AppointmentTime: req.AppointmentTime,
			Status:          entity.BookingStatusConfirmed,
			PaymentStatus:   entity.PaymentStatusPending,
			HomeSample:      req.HomeSample,
			CouponCode:      couponCode,
			OriginalAmount:  price,
			DiscountAmount:  decimal.Zero,
			FinalAmount:     price,
			Items: []entity.BookingItem{
				{
					TestID:    &test.ID,
					TestName:  test.Name,
					OrganName: test.Organ.Name,
					Price:     price,
				},
			},
		}

		if err := u.bookingRepo.Create(tx, &booking); err != nil {
			u.log.Warnf("Failed to create booking: %+v", err)
			return nil, err
		}

		booking.Vendor = *vendor
		bookings = append(bookings, booking)
		bookingIDs = append(bookingIDs, booking.ID.String())
		totalOriginal = totalOriginal.Add(price)
	}

	if err := u.auditService.Record(tx, &patientID, entity.AuditActionBookingCheckout, entity.JSON{
		"vendor_id":   req.VendorID.String(),
		"booking_ids": bookingIDs,
		"coupon_code": couponCode,
		"total":       totalOriginal.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.CheckoutResponse{
		Bookings:            converter.BookingsToResponses(bookings),
		CouponCode:          couponCode,
		TotalOriginalAmount: totalOriginal,
	}, nil
}

func (u *checkoutUsecase) GetMyBookings(ctx context.Context, patientID uuid.UUID) (*dto.BookingListResponse, error) {
	bookings, err := u.bookingRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find bookings by patient: %+v", err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

func (u *checkoutUsecase) GetMyBookingsGrouped(ctx context.Context, patientID uuid.UUID) (*dto.BookingGroupListResponse, error) {
	bookings, err := u.bookingRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find bookings by patient: %+v", err)
		return nil, err
	}

	groups := converter.GroupBookings(bookings)
	return &dto.BookingGroupListResponse{
		Groups: groups,
		Total:  len(groups),
	}, nil
}

func (u *checkoutUsecase) GetMyBooking(ctx context.Context, patientID, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking: %+v", err)
		return nil, err
	}
	if booking == nil || booking.PatientID != patientID {
		return nil, ErrBookingNotFound
	}

	return converter.BookingToResponse(booking), nil
}
