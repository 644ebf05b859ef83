package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

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
	ErrInvalidBookingStatus = errors.New("invalid booking status filter")
	ErrInvalidReportData    = errors.New("report data must be valid base64")
)

type VendorBookingUsecase interface {
	GetBookings(ctx context.Context, vendorID uuid.UUID, status string) (*dto.BookingListResponse, error)
	GetBookingsGrouped(ctx context.Context, vendorID uuid.UUID, status string) (*dto.BookingGroupListResponse, error)
	GetBooking(ctx context.Context, vendorID, bookingID uuid.UUID) (*dto.BookingResponse, error)
	VerifyCoupon(ctx context.Context, vendorID uuid.UUID, req *dto.VerifyCouponRequest) (*dto.VerifyCouponResponse, error)
	CompleteBooking(ctx context.Context, vendorID, bookingID uuid.UUID, req *dto.CompleteBookingRequest) (*dto.BookingResponse, error)
	CancelBooking(ctx context.Context, vendorID, bookingID uuid.UUID, req *dto.CancelBookingRequest) (*dto.BookingResponse, error)
}

type vendorBookingUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	bookingRepo    repository.BookingRepository
	couponRepo     repository.CouponRepository
	couponVerifier *service.CouponVerifier
	auditService   service.AuditService
}

func NewVendorBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	couponRepo repository.CouponRepository,
	couponVerifier *service.CouponVerifier,
	auditService service.AuditService,
) VendorBookingUsecase {
	return &vendorBookingUsecase{
		db:             db,
		log:            log,
		bookingRepo:    bookingRepo,
		couponRepo:     couponRepo,
		couponVerifier: couponVerifier,
		auditService:   auditService,
	}
}

func (u *vendorBookingUsecase) GetBookings(ctx context.Context, vendorID uuid.UUID, status string) (*dto.BookingListResponse, error) {
	filter, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}

	bookings, err := u.bookingRepo.FindByVendorID(u.db.WithContext(ctx), vendorID, filter)
	if err != nil {
		u.log.Warnf("Failed to find bookings by vendor: %+v", err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

func (u *vendorBookingUsecase) GetBookingsGrouped(ctx context.Context, vendorID uuid.UUID, status string) (*dto.BookingGroupListResponse, error) {
	filter, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}

	bookings, err := u.bookingRepo.FindByVendorID(u.db.WithContext(ctx), vendorID, filter)
	if err != nil {
		u.log.Warnf("Failed to find bookings by vendor: %+v", err)
		return nil, err
	}

	groups := converter.GroupBookings(bookings)
	return &dto.BookingGroupListResponse{
		Groups: groups,
		Total:  len(groups),
	}, nil
}

func (u *vendorBookingUsecase) GetBooking(ctx context.Context, vendorID, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.findVendorBooking(u.db.WithContext(ctx), vendorID, bookingID)
	if err != nil {
		return nil, err
	}
	return converter.BookingToResponse(booking), nil
}

// VerifyCoupon is the standalone pre-check the dashboard calls before
// completion. The entered code must match the code the booking group
// was placed with; a mismatch fails even when the entered code names a
// perfectly valid coupon.
func (u *vendorBookingUsecase) VerifyCoupon(ctx context.Context, vendorID uuid.UUID, req *dto.VerifyCouponRequest) (*dto.VerifyCouponResponse, error) {
	db := u.db.WithContext(ctx)

	booking, err := u.findVendorBooking(db, vendorID, req.BookingID)
	if err != nil {
		return nil, err
	}

	terms, err := u.verifyAgainstBooking(db, booking, req.CouponCode)
	if err != nil {
		return nil, err
	}

	return &dto.VerifyCouponResponse{
		Valid:          true,
		Code:           terms.Code,
		DiscountType:   string(terms.DiscountType),
		DiscountValue:  terms.DiscountValue,
		DiscountAmount: terms.DiscountAmount,
		OrderAmount:    booking.OriginalAmount,
	}, nil
}

// CompleteBooking settles a confirmed booking: verifies the coupon if
// one is entered, stacks it with the vendor's manual discount, marks
// the booking completed with its payment status, stores any uploaded
// report files, and expires the spent coupon. All of it commits or
// rolls back as one transaction.
func (u *vendorBookingUsecase) CompleteBooking(ctx context.Context, vendorID, bookingID uuid.UUID, req *dto.CompleteBookingRequest) (*dto.BookingResponse, error) {
	reports, err := decodeReports(req.Reports)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.findVendorBooking(tx, vendorID, bookingID)
	if err != nil {
		return nil, err
	}

	var terms *service.CouponTerms
	if strings.TrimSpace(req.CouponCode) != "" {
		terms, err = u.verifyAgainstBooking(tx, booking, req.CouponCode)
		if err != nil {
			return nil, err
		}
	}

	expireCoupon, err := settleCompletion(booking, req, terms)
	if err != nil {
		return nil, err
	}

	if err := u.bookingRepo.Update(tx, booking); err != nil {
		u.log.Warnf("Failed to update booking: %+v", err)
		return nil, err
	}

	if len(reports) > 0 {
		if err := u.bookingRepo.AddReports(tx, booking.ID, reports); err != nil {
			u.log.Warnf("Failed to store booking reports: %+v", err)
			return nil, err
		}
		booking.Reports = append(booking.Reports, reports...)
	}

	// A redeemed coupon is single-use
	if expireCoupon {
		if _, err := u.couponRepo.ExpireByCode(tx, booking.CouponCode); err != nil {
			u.log.Warnf("Failed to expire coupon %s: %+v", booking.CouponCode, err)
			return nil, err
		}
	}

	if err := u.auditService.Record(tx, &vendorID, entity.AuditActionBookingComplete, entity.JSON{
		"booking_id":     booking.ID.String(),
		"payment_status": req.PaymentStatus,
		"discount_type":  booking.DiscountType,
		"discount":       booking.DiscountAmount.String(),
		"final_amount":   booking.FinalAmount.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BookingToResponse(booking), nil
}

// CancelBooking moves a confirmed booking to its cancelled terminal
// state. The group's coupon is expired once no confirmed booking in
// the group is left to redeem it.
func (u *vendorBookingUsecase) CancelBooking(ctx context.Context, vendorID, bookingID uuid.UUID, req *dto.CancelBookingRequest) (*dto.BookingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.findVendorBooking(tx, vendorID, bookingID)
	if err != nil {
		return nil, err
	}

	if err := booking.Cancel(req.Reason); err != nil {
		return nil, err
	}

	if err := u.bookingRepo.Update(tx, booking); err != nil {
		u.log.Warnf("Failed to update booking: %+v", err)
		return nil, err
	}

	if booking.CouponCode != "" {
		siblings, err := u.bookingRepo.FindByCouponCode(tx, booking.CouponCode)
		if err != nil {
			u.log.Warnf("Failed to find booking group: %+v", err)
			return nil, err
		}
		if expireAfterCancel(booking, siblings) {
			if _, err := u.couponRepo.ExpireByCode(tx, booking.CouponCode); err != nil {
				u.log.Warnf("Failed to expire coupon %s: %+v", booking.CouponCode, err)
				return nil, err
			}
		}
	}

	if err := u.auditService.Record(tx, &vendorID, entity.AuditActionBookingCancel, entity.JSON{
		"booking_id": booking.ID.String(),
		"reason":     booking.CancellationReason,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BookingToResponse(booking), nil
}

func (u *vendorBookingUsecase) findVendorBooking(db *gorm.DB, vendorID, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := u.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking: %+v", err)
		return nil, err
	}
	if booking == nil || booking.VendorID != vendorID {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (u *vendorBookingUsecase) verifyAgainstBooking(db *gorm.DB, booking *entity.Booking, entered string) (*service.CouponTerms, error) {
	var coupon *entity.Coupon
	if service.CodesEqual(entered, booking.CouponCode) {
		found, err := u.couponRepo.FindByCode(db, booking.CouponCode)
		if err != nil {
			u.log.Warnf("Failed to find coupon: %+v", err)
			return nil, err
		}
		coupon = found
	}
	return u.couponVerifier.Verify(entered, booking.CouponCode, booking.VendorID, booking.OriginalAmount, coupon)
}

// settleCompletion prices the completion and applies it to the booking:
// the manual percent and coupon amount are aggregated, the booking moves
// to completed with its payment status, and the discount breakdown is
// recorded. terms is nil when the vendor entered no coupon code. The
// returned flag reports whether a redeemed coupon must be expired; a
// couponless completion never touches the coupon.
func settleCompletion(booking *entity.Booking, req *dto.CompleteBookingRequest, terms *service.CouponTerms) (bool, error) {
	couponAmount := decimal.Zero
	if terms != nil {
		couponAmount = terms.DiscountAmount
	}

	breakdown, err := service.AggregateDiscount(booking.OriginalAmount, req.ManualDiscountPercent, couponAmount)
	if err != nil {
		return false, err
	}

	if err := booking.Complete(entity.PaymentStatus(req.PaymentStatus)); err != nil {
		return false, err
	}

	discountValue := req.ManualDiscountPercent
	if breakdown.Type() == entity.DiscountTypeCoupon {
		discountValue = couponAmount
	}
	booking.ApplyDiscount(breakdown.Type(), discountValue, breakdown.TotalDiscount, breakdown.FinalAmount)

	if req.HomeSample != nil {
		booking.HomeSample = *req.HomeSample
	}

	return terms != nil, nil
}

// expireAfterCancel reports whether the cancelled booking left no
// confirmed sibling in its coupon group, so the group's coupon can no
// longer be redeemed by another line of the same order.
func expireAfterCancel(cancelled *entity.Booking, group []entity.Booking) bool {
	for i := range group {
		if group[i].ID != cancelled.ID && group[i].IsConfirmed() {
			return false
		}
	}
	return true
}

func parseStatusFilter(status string) (entity.BookingStatus, error) {
	switch entity.BookingStatus(status) {
	case "", entity.BookingStatusConfirmed, entity.BookingStatusCompleted, entity.BookingStatusCancelled:
		return entity.BookingStatus(status), nil
	default:
		return "", ErrInvalidBookingStatus
	}
}

func decodeReports(uploads []dto.ReportUpload) ([]entity.BookingReport, error) {
	if len(uploads) == 0 {
		return nil, nil
	}
	reports := make([]entity.BookingReport, 0, len(uploads))
	for _, upload := range uploads {
		data, err := base64.StdEncoding.DecodeString(upload.Data)
		if err != nil || len(data) == 0 {
			return nil, ErrInvalidReportData
		}
		reports = append(reports, entity.BookingReport{
			FileName:    upload.FileName,
			ContentType: upload.ContentType,
			Data:        data,
		})
	}
	return reports, nil
}
