package usecase

import (
	"context"

	"diagnolab/internal/converter"
	"diagnolab/internal/delivery/dto"
	"diagnolab/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditLogUsecase interface {
	GetLogs(ctx context.Context, action string, userID *uuid.UUID, limit, offset int) ([]dto.AuditLogResponse, int64, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(db *gorm.DB, log *logrus.Logger, auditLogRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) GetLogs(ctx context.Context, action string, userID *uuid.UUID, limit, offset int) ([]dto.AuditLogResponse, int64, error) {
	logs, total, err := u.auditLogRepo.FindAll(u.db.WithContext(ctx), action, userID, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, 0, err
	}
	return converter.AuditLogsToResponses(logs), total, nil
}
