package repository

import (
	"errors"

	"diagnolab/internal/domain/entity"
	domainRepo "diagnolab/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type organRepository struct{}

func NewOrganRepository() domainRepo.OrganRepository {
	return &organRepository{}
}

func (r *organRepository) Create(db *gorm.DB, organ *entity.Organ) error {
	return db.Create(organ).Error
}

func (r *organRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.Organ, int64, error) {
	var organs []entity.Organ
	var total int64

	if err := db.Model(&entity.Organ{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("name ASC").Limit(limit).Offset(offset).Find(&organs).Error
	if err != nil {
		return nil, 0, err
	}

	return organs, total, nil
}

func (r *organRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Organ, error) {
	var organ entity.Organ
	err := db.Where("id = ?", id).First(&organ).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &organ, nil
}

func (r *organRepository) Update(db *gorm.DB, organ *entity.Organ) error {
	return db.Save(organ).Error
}

func (r *organRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Organ{}).Error
}

func (r *organRepository) CountTests(db *gorm.DB, organID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.LabTest{}).Where("organ_id = ?", organID).Count(&count).Error
	return count, err
}
