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
	ErrOrganAlreadyExists = errors.New("organ with this name already exists")
	ErrOrganInUse         = errors.New("organ has tests attached and cannot be deleted")
)

type OrganUsecase interface {
	CreateOrgan(ctx context.Context, adminID uuid.UUID, req *dto.CreateOrganRequest) (*dto.OrganResponse, error)
	GetOrgans(ctx context.Context, limit, offset int) ([]dto.OrganResponse, int64, error)
	GetOrgan(ctx context.Context, id uuid.UUID) (*dto.OrganResponse, error)
	UpdateOrgan(ctx context.Context, adminID, id uuid.UUID, req *dto.UpdateOrganRequest) (*dto.OrganResponse, error)
	DeleteOrgan(ctx context.Context, adminID, id uuid.UUID) error
}

type organUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	organRepo    repository.OrganRepository
	auditService service.AuditService
}

func NewOrganUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	organRepo repository.OrganRepository,
	auditService service.AuditService,
) OrganUsecase {
	return &organUsecase{
		db:           db,
		log:          log,
		organRepo:    organRepo,
		auditService: auditService,
	}
}

func (u *organUsecase) CreateOrgan(ctx context.Context, adminID uuid.UUID, req *dto.CreateOrganRequest) (*dto.OrganResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	organ := &entity.Organ{
		Name:   req.Name,
		Status: entity.OrganStatusActive,
	}

	if err := u.organRepo.Create(tx, organ); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrOrganAlreadyExists
		}
		u.log.Warnf("Failed to create organ: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &adminID, entity.AuditActionOrganCreate, entity.JSON{
		"organ_id": organ.ID.String(),
		"name":     organ.Name,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.OrganToResponse(organ), nil
}

func (u *organUsecase) GetOrgans(ctx context.Context, limit, offset int) ([]dto.OrganResponse, int64, error) {
	organs, total, err := u.organRepo.FindAll(u.db.WithContext(ctx), limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find organs: %+v", err)
		return nil, 0, err
	}
	return converter.OrgansToResponses(organs), total, nil
}

func (u *organUsecase) GetOrgan(ctx context.Context, id uuid.UUID) (*dto.OrganResponse, error) {
	organ, err := u.organRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find organ: %+v", err)
		return nil, err
	}
	if organ == nil {
		return nil, ErrOrganNotFound
	}
	return converter.OrganToResponse(organ), nil
}

func (u *organUsecase) UpdateOrgan(ctx context.Context, adminID, id uuid.UUID, req *dto.UpdateOrganRequest) (*dto.OrganResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	organ, err := u.organRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find organ: %+v", err)
		return nil, err
	}
	if organ == nil {
		return nil, ErrOrganNotFound
	}

	organ.Name = req.Name
	organ.Status = entity.OrganStatus(req.Status)

	if err := u.organRepo.Update(tx, organ); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrOrganAlreadyExists
		}
		u.log.Warnf("Failed to update organ: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &adminID, entity.AuditActionOrganUpdate, entity.JSON{
		"organ_id": organ.ID.String(),
		"name":     organ.Name,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.OrganToResponse(organ), nil
}

// DeleteOrgan refuses to delete an organ that still has tests pointing
// at it
func (u *organUsecase) DeleteOrgan(ctx context.Context, adminID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	organ, err := u.organRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find organ: %+v", err)
		return err
	}
	if organ == nil {
		return ErrOrganNotFound
	}

	count, err := u.organRepo.CountTests(tx, id)
	if err != nil {
		u.log.Warnf("Failed to count organ tests: %+v", err)
		return err
	}
	if count > 0 {
		return ErrOrganInUse
	}

	if err := u.organRepo.Delete(tx, id); err != nil {
		if isForeignKeyError(err, "organ") {
			return ErrOrganInUse
		}
		u.log.Warnf("Failed to delete organ: %+v", err)
		return err
	}

	if err := u.auditService.Record(tx, &adminID, entity.AuditActionOrganDelete, entity.JSON{
		"organ_id": organ.ID.String(),
		"name":     organ.Name,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
