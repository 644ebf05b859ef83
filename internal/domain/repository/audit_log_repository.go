package repository

import (
	"diagnolab/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindAll(db *gorm.DB, action string, userID *uuid.UUID, limit, offset int) ([]entity.AuditLog, int64, error)
}
