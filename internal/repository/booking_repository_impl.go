package repository

import (
	"errors"

	"diagnolab/internal/domain/entity"
	domainRepo "diagnolab/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Items").Preload("Reports").Preload("Vendor").
		Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Preload("Items").Preload("Reports").Preload("Vendor").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByVendorID(db *gorm.DB, vendorID uuid.UUID, status entity.BookingStatus) ([]entity.Booking, error) {
	var bookings []entity.Booking
	query := db.Preload("Items").Preload("Reports").
		Where("vendor_id = ?", vendorID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByCouponCode(db *gorm.DB, code string) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Preload("Items").
		Where("coupon_code = ?", code).
		Order("created_at ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) Update(db *gorm.DB, booking *entity.Booking) error {
	return db.Save(booking).Error
}

func (r *bookingRepository) AddReports(db *gorm.DB, bookingID uuid.UUID, reports []entity.BookingReport) error {
	if len(reports) == 0 {
		return nil
	}
	for i := range reports {
		reports[i].BookingID = bookingID
	}
	return db.Create(&reports).Error
}
