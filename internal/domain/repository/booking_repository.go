package repository

import (
	"diagnolab/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Booking, error)
	FindByVendorID(db *gorm.DB, vendorID uuid.UUID, status entity.BookingStatus) ([]entity.Booking, error)
	FindByCouponCode(db *gorm.DB, code string) ([]entity.Booking, error)
	Update(db *gorm.DB, booking *entity.Booking) error
	AddReports(db *gorm.DB, bookingID uuid.UUID, reports []entity.BookingReport) error
}
