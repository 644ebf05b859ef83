package service

import (
	"errors"
	"io"
	"testing"

	"diagnolab/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type fakeAuditLogRepository struct {
	createErr error
	entries   []*entity.AuditLog
}

func (f *fakeAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.entries = append(f.entries, log)
	return nil
}

func (f *fakeAuditLogRepository) FindAll(db *gorm.DB, action string, userID *uuid.UUID, limit, offset int) ([]entity.AuditLog, int64, error) {
	return nil, 0, nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestAuditRecordWritesEntry(t *testing.T) {
	repo := &fakeAuditLogRepository{}
	svc := NewAuditService(quietLogger(), repo)

	userID := uuid.New()
	err := svc.Record(nil, &userID, entity.AuditActionBookingComplete, entity.JSON{"booking_id": "b1"})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(repo.entries))
	}
	entry := repo.entries[0]
	if entry.Action != entity.AuditActionBookingComplete {
		t.Errorf("Action = %s", entry.Action)
	}
	if entry.UserID == nil || *entry.UserID != userID {
		t.Errorf("UserID = %v, want %s", entry.UserID, userID)
	}
}

func TestAuditRecordPropagatesWriteError(t *testing.T) {
	writeErr := errors.New("insert failed")
	repo := &fakeAuditLogRepository{createErr: writeErr}
	svc := NewAuditService(quietLogger(), repo)

	userID := uuid.New()
	err := svc.Record(nil, &userID, entity.AuditActionBookingCancel, entity.JSON{})
	if !errors.Is(err, writeErr) {
		t.Fatalf("Record() error = %v, want %v", err, writeErr)
	}
}
