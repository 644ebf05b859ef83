package usecase

import (
	"context"
	"errors"

	"diagnolab/internal/converter"
	"diagnolab/internal/delivery/dto"
	"diagnolab/internal/domain/entity"
	"diagnolab/internal/domain/repository"
	"diagnolab/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrVendorNotFound         = errors.New("vendor not found")
	ErrInvalidApprovalStatus  = errors.New("invalid approval status filter")
	ErrVendorAlreadyProcessed = errors.New("vendor application was already processed")
)

type VendorAdminUsecase interface {
	GetVendors(ctx context.Context, status string, limit, offset int) ([]dto.VendorResponse, int64, error)
	GetVendor(ctx context.Context, vendorID uuid.UUID) (*dto.VendorResponse, error)
	ApproveVendor(ctx context.Context, adminID, vendorID uuid.UUID) (*dto.VendorResponse, error)
	RejectVendor(ctx context.Context, adminID, vendorID uuid.UUID) (*dto.VendorResponse, error)
}

type vendorAdminUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	vendorProfileRepo repository.VendorProfileRepository
	auditService      service.AuditService
}

func NewVendorAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	vendorProfileRepo repository.VendorProfileRepository,
	auditService service.AuditService,
) VendorAdminUsecase {
	return &vendorAdminUsecase{
		db:                db,
		log:               log,
		vendorProfileRepo: vendorProfileRepo,
		auditService:      auditService,
	}
}

func (u *vendorAdminUsecase) GetVendors(ctx context.Context, status string, limit, offset int) ([]dto.VendorResponse, int64, error) {
	filter := entity.ApprovalStatus(status)
	switch filter {
	case "", entity.ApprovalStatusPending, entity.ApprovalStatusApproved, entity.ApprovalStatusRejected:
	default:
		return nil, 0, ErrInvalidApprovalStatus
	}

	vendors, total, err := u.vendorProfileRepo.FindAll(u.db.WithContext(ctx), filter, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find vendors: %+v", err)
		return nil, 0, err
	}

	return converter.VendorsToResponses(vendors), total, nil
}

func (u *vendorAdminUsecase) GetVendor(ctx context.Context, vendorID uuid.UUID) (*dto.VendorResponse, error) {
	vendor, err := u.vendorProfileRepo.FindByUserID(u.db.WithContext(ctx), vendorID)
	if err != nil {
		u.log.Warnf("Failed to find vendor: %+v", err)
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}
	return converter.VendorToResponse(vendor), nil
}

func (u *vendorAdminUsecase) ApproveVendor(ctx context.Context, adminID, vendorID uuid.UUID) (*dto.VendorResponse, error) {
	return u.decide(ctx, adminID, vendorID, entity.ApprovalStatusApproved, entity.AuditActionVendorApprove)
}

func (u *vendorAdminUsecase) RejectVendor(ctx context.Context, adminID, vendorID uuid.UUID) (*dto.VendorResponse, error) {
	return u.decide(ctx, adminID, vendorID, entity.ApprovalStatusRejected, entity.AuditActionVendorReject)
}

// decide moves a pending vendor application to approved or rejected.
// Decisions are not re-playable on already processed applications.
func (u *vendorAdminUsecase) decide(ctx context.Context, adminID, vendorID uuid.UUID, status entity.ApprovalStatus, action string) (*dto.VendorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	vendor, err := u.vendorProfileRepo.FindByUserID(tx, vendorID)
	if err != nil {
		u.log.Warnf("Failed to find vendor: %+v", err)
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}
	if vendor.ApprovalStatus != entity.ApprovalStatusPending {
		return nil, ErrVendorAlreadyProcessed
	}

	vendor.ApprovalStatus = status

	if err := u.vendorProfileRepo.Update(tx, vendor); err != nil {
		u.log.Warnf("Failed to update vendor: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &adminID, action, entity.JSON{
		"vendor_id": vendor.UserID.String(),
		"lab_name":  vendor.LabName,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.VendorToResponse(vendor), nil
}
