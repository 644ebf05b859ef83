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
	ErrCouponAlreadyExists = errors.New("coupon code already exists")
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponWindow        = errors.New("valid_until must be after valid_from")
	ErrCouponValue         = errors.New("invalid coupon discount value")
)

var couponPercentCap = decimal.NewFromInt(100)

type CouponUsecase interface {
	// CreateCoupon issues a coupon. A vendor passes its own ID to
	// scope the code to its lab; admins may pass any vendor or none.
	CreateCoupon(ctx context.Context, actorID uuid.UUID, vendorScope *uuid.UUID, req *dto.CreateCouponRequest) (*dto.CouponResponse, error)
	GetCoupons(ctx context.Context, vendorScope *uuid.UUID, limit, offset int) ([]dto.CouponResponse, int64, error)
	GetCoupon(ctx context.Context, id uuid.UUID) (*dto.CouponResponse, error)
	ExpireCoupon(ctx context.Context, actorID uuid.UUID, code string) error
}

type couponUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	couponRepo   repository.CouponRepository
	auditService service.AuditService
}

func NewCouponUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	couponRepo repository.CouponRepository,
	auditService service.AuditService,
) CouponUsecase {
	return &couponUsecase{
		db:           db,
		log:          log,
		couponRepo:   couponRepo,
		auditService: auditService,
	}
}

func (u *couponUsecase) CreateCoupon(ctx context.Context, actorID uuid.UUID, vendorScope *uuid.UUID, req *dto.CreateCouponRequest) (*dto.CouponResponse, error) {
	discountType := entity.CouponDiscountType(req.DiscountType)
	if req.DiscountValue.IsNegative() || req.DiscountValue.IsZero() {
		return nil, ErrCouponValue
	}
	if discountType == entity.CouponDiscountPercent && req.DiscountValue.GreaterThan(couponPercentCap) {
		return nil, ErrCouponValue
	}

	validFrom, validUntil, err := parseValidityWindow(req.ValidFrom, req.ValidUntil)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	coupon := &entity.Coupon{
		Code:          strings.ToUpper(strings.TrimSpace(req.Code)),
		VendorID:      vendorScope,
		DiscountType:  discountType,
		DiscountValue: req.DiscountValue,
		MinOrderValue: req.MinOrderValue,
		ValidFrom:     validFrom,
		ValidUntil:    validUntil,
		Status:        entity.CouponStatusActive,
	}

	if err := u.couponRepo.Create(tx, coupon); err != nil {
		if isDuplicateKeyError(err, "code") {
			return nil, ErrCouponAlreadyExists
		}
		u.log.Warnf("Failed to create coupon: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &actorID, entity.AuditActionCouponIssue, entity.JSON{
		"coupon_id": coupon.ID.String(),
		"code":      coupon.Code,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.CouponToResponse(coupon), nil
}

func (u *couponUsecase) GetCoupons(ctx context.Context, vendorScope *uuid.UUID, limit, offset int) ([]dto.CouponResponse, int64, error) {
	coupons, total, err := u.couponRepo.FindAll(u.db.WithContext(ctx), vendorScope, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find coupons: %+v", err)
		return nil, 0, err
	}
	return converter.CouponsToResponses(coupons), total, nil
}

func (u *couponUsecase) GetCoupon(ctx context.Context, id uuid.UUID) (*dto.CouponResponse, error) {
	coupon, err := u.couponRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find coupon: %+v", err)
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	return converter.CouponToResponse(coupon), nil
}

func (u *couponUsecase) ExpireCoupon(ctx context.Context, actorID uuid.UUID, code string) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	coupon, err := u.couponRepo.FindByCode(tx, code)
	if err != nil {
		u.log.Warnf("Failed to find coupon: %+v", err)
		return err
	}
	if coupon == nil {
		return ErrCouponNotFound
	}

	if _, err := u.couponRepo.ExpireByCode(tx, coupon.Code); err != nil {
		u.log.Warnf("Failed to expire coupon: %+v", err)
		return err
	}

	if err := u.auditService.Record(tx, &actorID, entity.AuditActionCouponExpire, entity.JSON{
		"coupon_id": coupon.ID.String(),
		"code":      coupon.Code,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func parseValidityWindow(from, until string) (*time.Time, *time.Time, error) {
	var validFrom, validUntil *time.Time
	if from != "" {
		parsed, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return nil, nil, ErrCouponWindow
		}
		validFrom = &parsed
	}
	if until != "" {
		parsed, err := time.Parse(time.RFC3339, until)
		if err != nil {
			return nil, nil, ErrCouponWindow
		}
		validUntil = &parsed
	}
	if validFrom != nil && validUntil != nil && !validUntil.After(*validFrom) {
		return nil, nil, ErrCouponWindow
	}
	return validFrom, validUntil, nil
}
