package service

import (
	"diagnolab/internal/domain/entity"
	"diagnolab/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService writes audit trail rows. Callers pass their transaction
// handle so the audit row commits or rolls back with the business
// change.
type AuditService interface {
	Record(tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error {
	entry := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}
	if err := s.auditRepo.Create(tx, entry); err != nil {
		s.log.Warnf("Failed to write audit log for action %s: %+v", action, err)
		return err
	}
	return nil
}
