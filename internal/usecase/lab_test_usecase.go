package usecase

import (
	"context"
	"errors"

	"diagnolab/internal/converter"
	"diagnolab/internal/delivery/dto"
	"diagnolab/internal/domain/entity"
	"diagnolab/internal/domain/repository"
	"diagnolab/internal/service"
	"diagnolab/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrOrganNotFound   = errors.New("organ not found")
	ErrLabNotFound     = errors.New("one or more labs not found or not approved")
	ErrNotTestOwner    = errors.New("test belongs to another vendor")
	ErrTestNotFoundOne = errors.New("test not found")
	ErrInvalidPrice    = errors.New("invalid price, use a single value or min-max")
)

// TestListFilter carries catalog listing query parameters
type TestListFilter struct {
	Name     string
	OrganID  *uuid.UUID
	VendorID *uuid.UUID
	Status   string
	Category string
	Limit    int
	Offset   int
}

type LabTestUsecase interface {
	// CreateTest creates a test owned by the given vendor, or an
	// admin catalog entry when ownerID is nil
	CreateTest(ctx context.Context, ownerID *uuid.UUID, req *dto.CreateTestRequest) (*dto.TestResponse, error)
	GetTests(ctx context.Context, filter TestListFilter) ([]dto.TestResponse, int64, error)
	GetTestsGrouped(ctx context.Context, filter TestListFilter) (*dto.TestGroupListResponse, error)
	GetTest(ctx context.Context, id uuid.UUID) (*dto.TestResponse, error)
	// UpdateTest and DeleteTest enforce ownership when actorID is a
	// vendor; admins pass nil and may touch any test
	UpdateTest(ctx context.Context, actorID *uuid.UUID, id uuid.UUID, req *dto.UpdateTestRequest) (*dto.TestResponse, error)
	DeleteTest(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) error
}

type labTestUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	labTestRepo       repository.LabTestRepository
	organRepo         repository.OrganRepository
	vendorProfileRepo repository.VendorProfileRepository
	auditService      service.AuditService
}

func NewLabTestUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	labTestRepo repository.LabTestRepository,
	organRepo repository.OrganRepository,
	vendorProfileRepo repository.VendorProfileRepository,
	auditService service.AuditService,
) LabTestUsecase {
	return &labTestUsecase{
		db:                db,
		log:               log,
		labTestRepo:       labTestRepo,
		organRepo:         organRepo,
		vendorProfileRepo: vendorProfileRepo,
		auditService:      auditService,
	}
}

func (u *labTestUsecase) CreateTest(ctx context.Context, ownerID *uuid.UUID, req *dto.CreateTestRequest) (*dto.TestResponse, error) {
	priceMin, priceMax, err := validator.ParsePriceRange(req.Price)
	if err != nil {
		return nil, ErrInvalidPrice
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	organ, err := u.organRepo.FindByID(tx, req.OrganID)
	if err != nil {
		u.log.Warnf("Failed to find organ: %+v", err)
		return nil, err
	}
	if organ == nil {
		return nil, ErrOrganNotFound
	}

	labs, err := u.resolveLabs(tx, req.LabIDs)
	if err != nil {
		return nil, err
	}

	status := entity.TestStatus(req.Status)
	if status == "" {
		status = entity.TestStatusActive
	}

	test := &entity.LabTest{
		Name:        req.Name,
		OrganID:     req.OrganID,
		VendorID:    ownerID,
		PriceMin:    priceMin,
		PriceMax:    priceMax,
		Status:      status,
		Overview:    req.Overview,
		Preparation: req.Preparation,
		Importance:  req.Importance,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	}

	if err := u.labTestRepo.Create(tx, test); err != nil {
		u.log.Warnf("Failed to create test: %+v", err)
		return nil, err
	}

	if len(labs) > 0 {
		if err := u.labTestRepo.ReplaceLabs(tx, test, labs); err != nil {
			u.log.Warnf("Failed to attach labs: %+v", err)
			return nil, err
		}
		test.Labs = labs
	}

	if err := u.auditService.Record(tx, ownerID, entity.AuditActionTestCreate, entity.JSON{
		"test_id": test.ID.String(),
		"name":    test.Name,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	test.Organ = *organ
	return converter.TestToResponse(test), nil
}

func (u *labTestUsecase) GetTests(ctx context.Context, filter TestListFilter) ([]dto.TestResponse, int64, error) {
	tests, total, err := u.labTestRepo.FindAll(u.db.WithContext(ctx), repoFilter(filter), filter.Limit, filter.Offset)
	if err != nil {
		u.log.Warnf("Failed to find tests: %+v", err)
		return nil, 0, err
	}
	return converter.TestsToResponses(tests), total, nil
}

func (u *labTestUsecase) GetTestsGrouped(ctx context.Context, filter TestListFilter) (*dto.TestGroupListResponse, error) {
	tests, _, err := u.labTestRepo.FindAll(u.db.WithContext(ctx), repoFilter(filter), filter.Limit, filter.Offset)
	if err != nil {
		u.log.Warnf("Failed to find tests: %+v", err)
		return nil, err
	}

	groups := converter.GroupTestsByName(tests)
	return &dto.TestGroupListResponse{
		Groups: groups,
		Total:  len(groups),
	}, nil
}

func (u *labTestUsecase) GetTest(ctx context.Context, id uuid.UUID) (*dto.TestResponse, error) {
	test, err := u.labTestRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find test: %+v", err)
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFoundOne
	}
	return converter.TestToResponse(test), nil
}

func (u *labTestUsecase) UpdateTest(ctx context.Context, actorID *uuid.UUID, id uuid.UUID, req *dto.UpdateTestRequest) (*dto.TestResponse, error) {
	priceMin, priceMax, err := validator.ParsePriceRange(req.Price)
	if err != nil {
		return nil, ErrInvalidPrice
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	test, err := u.findOwnedTest(tx, actorID, id)
	if err != nil {
		return nil, err
	}

	organ, err := u.organRepo.FindByID(tx, req.OrganID)
	if err != nil {
		u.log.Warnf("Failed to find organ: %+v", err)
		return nil, err
	}
	if organ == nil {
		return nil, ErrOrganNotFound
	}

	labs, err := u.resolveLabs(tx, req.LabIDs)
	if err != nil {
		return nil, err
	}

	test.Name = req.Name
	test.OrganID = req.OrganID
	test.PriceMin = priceMin
	test.PriceMax = priceMax
	test.Status = entity.TestStatus(req.Status)
	test.Overview = req.Overview
	test.Preparation = req.Preparation
	test.Importance = req.Importance
	test.ImageURL = req.ImageURL
	test.Category = req.Category

	if err := u.labTestRepo.Update(tx, test); err != nil {
		u.log.Warnf("Failed to update test: %+v", err)
		return nil, err
	}

	if err := u.labTestRepo.ReplaceLabs(tx, test, labs); err != nil {
		u.log.Warnf("Failed to replace labs: %+v", err)
		return nil, err
	}
	test.Labs = labs

	if err := u.auditService.Record(tx, actorID, entity.AuditActionTestUpdate, entity.JSON{
		"test_id": test.ID.String(),
		"name":    test.Name,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	test.Organ = *organ
	return converter.TestToResponse(test), nil
}

func (u *labTestUsecase) DeleteTest(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	test, err := u.findOwnedTest(tx, actorID, id)
	if err != nil {
		return err
	}

	if err := u.labTestRepo.Delete(tx, test.ID); err != nil {
		u.log.Warnf("Failed to delete test: %+v", err)
		return err
	}

	if err := u.auditService.Record(tx, actorID, entity.AuditActionTestDelete, entity.JSON{
		"test_id": test.ID.String(),
		"name":    test.Name,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *labTestUsecase) findOwnedTest(db *gorm.DB, actorID *uuid.UUID, id uuid.UUID) (*entity.LabTest, error) {
	test, err := u.labTestRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find test: %+v", err)
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFoundOne
	}
	if actorID != nil {
		if test.VendorID == nil || *test.VendorID != *actorID {
			return nil, ErrNotTestOwner
		}
	}
	return test, nil
}

func (u *labTestUsecase) resolveLabs(db *gorm.DB, labIDs []uuid.UUID) ([]entity.VendorProfile, error) {
	labs := make([]entity.VendorProfile, 0, len(labIDs))
	for _, labID := range labIDs {
		lab, err := u.vendorProfileRepo.FindByUserID(db, labID)
		if err != nil {
			u.log.Warnf("Failed to find lab: %+v", err)
			return nil, err
		}
		if lab == nil || !lab.IsApproved() {
			return nil, ErrLabNotFound
		}
		labs = append(labs, *lab)
	}
	return labs, nil
}

func repoFilter(filter TestListFilter) repository.TestFilter {
	return repository.TestFilter{
		Name:     filter.Name,
		OrganID:  filter.OrganID,
		VendorID: filter.VendorID,
		Status:   entity.TestStatus(filter.Status),
		Category: filter.Category,
	}
}
