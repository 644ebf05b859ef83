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

var ErrPackageNotFound = errors.New("package not found")

type PackageUsecase interface {
	CreatePackage(ctx context.Context, adminID uuid.UUID, req *dto.CreatePackageRequest) (*dto.PackageResponse, error)
	GetPackages(ctx context.Context, limit, offset int) ([]dto.PackageResponse, int64, error)
	GetPackage(ctx context.Context, id uuid.UUID) (*dto.PackageResponse, error)
	UpdatePackage(ctx context.Context, adminID, id uuid.UUID, req *dto.UpdatePackageRequest) (*dto.PackageResponse, error)
	DeletePackage(ctx context.Context, adminID, id uuid.UUID) error
}

type packageUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	packageRepo  repository.TestPackageRepository
	labTestRepo  repository.LabTestRepository
	auditService service.AuditService
}

func NewPackageUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	packageRepo repository.TestPackageRepository,
	labTestRepo repository.LabTestRepository,
	auditService service.AuditService,
) PackageUsecase {
	return &packageUsecase{
		db:           db,
		log:          log,
		packageRepo:  packageRepo,
		labTestRepo:  labTestRepo,
		auditService: auditService,
	}
}

func (u *packageUsecase) CreatePackage(ctx context.Context, adminID uuid.UUID, req *dto.CreatePackageRequest) (*dto.PackageResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	tests, err := u.resolveTests(tx, req.TestIDs)
	if err != nil {
		return nil, err
	}

	pkg := &entity.TestPackage{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Status:      entity.TestStatusActive,
	}

	if err := u.packageRepo.Create(tx, pkg); err != nil {
		u.log.Warnf("Failed to create package: %+v", err)
		return nil, err
	}

	if err := u.packageRepo.ReplaceTests(tx, pkg, tests); err != nil {
		u.log.Warnf("Failed to attach package tests: %+v", err)
		return nil, err
	}
	pkg.Tests = tests

	if err := u.auditService.Record(tx, &adminID, entity.AuditActionPackageCreate, entity.JSON{
		"package_id": pkg.ID.String(),
		"name":       pkg.Name,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PackageToResponse(pkg), nil
}

func (u *packageUsecase) GetPackages(ctx context.Context, limit, offset int) ([]dto.PackageResponse, int64, error) {
	packages, total, err := u.packageRepo.FindAll(u.db.WithContext(ctx), limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find packages: %+v", err)
		return nil, 0, err
	}
	return converter.PackagesToResponses(packages), total, nil
}

func (u *packageUsecase) GetPackage(ctx context.Context, id uuid.UUID) (*dto.PackageResponse, error) {
	pkg, err := u.packageRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find package: %+v", err)
		return nil, err
	}
	if pkg == nil {
		return nil, ErrPackageNotFound
	}
	return converter.PackageToResponse(pkg), nil
}

func (u *packageUsecase) UpdatePackage(ctx context.Context, adminID, id uuid.UUID, req *dto.UpdatePackageRequest) (*dto.PackageResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	pkg, err := u.packageRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find package: %+v", err)
		return nil, err
	}
	if pkg == nil {
		return nil, ErrPackageNotFound
	}

	tests, err := u.resolveTests(tx, req.TestIDs)
	if err != nil {
		return nil, err
	}

	pkg.Name = req.Name
	pkg.Description = req.Description
	pkg.Price = req.Price
	pkg.Status = entity.TestStatus(req.Status)

	if err := u.packageRepo.Update(tx, pkg); err != nil {
		u.log.Warnf("Failed to update package: %+v", err)
		return nil, err
	}

	if err := u.packageRepo.ReplaceTests(tx, pkg, tests); err != nil {
		u.log.Warnf("Failed to replace package tests: %+v", err)
		return nil, err
	}
	pkg.Tests = tests

	if err := u.auditService.Record(tx, &adminID, entity.AuditActionPackageUpdate, entity.JSON{
		"package_id": pkg.ID.String(),
		"name":       pkg.Name,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PackageToResponse(pkg), nil
}

func (u *packageUsecase) DeletePackage(ctx context.Context, adminID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	pkg, err := u.packageRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find package: %+v", err)
		return err
	}
	if pkg == nil {
		return ErrPackageNotFound
	}

	if err := u.packageRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete package: %+v", err)
		return err
	}

	if err := u.auditService.Record(tx, &adminID, entity.AuditActionPackageDelete, entity.JSON{
		"package_id": pkg.ID.String(),
		"name":       pkg.Name,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *packageUsecase) resolveTests(db *gorm.DB, testIDs []uuid.UUID) ([]entity.LabTest, error) {
	tests, err := u.labTestRepo.FindByIDs(db, testIDs)
	if err != nil {
		u.log.Warnf("Failed to find tests: %+v", err)
		return nil, err
	}
	if len(tests) != len(testIDs) {
		return nil, ErrTestNotFound
	}
	return tests, nil
}
