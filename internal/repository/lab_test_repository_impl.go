package repository

import (
	"errors"

	"diagnolab/internal/domain/entity"
	domainRepo "diagnolab/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type labTestRepository struct{}

func NewLabTestRepository() domainRepo.LabTestRepository {
	return &labTestRepository{}
}

func (r *labTestRepository) Create(db *gorm.DB, test *entity.LabTest) error {
	return db.Create(test).Error
}

func (r *labTestRepository) FindAll(db *gorm.DB, filter domainRepo.TestFilter, limit, offset int) ([]entity.LabTest, int64, error) {
	var tests []entity.LabTest
	var total int64

	query := db.Model(&entity.LabTest{})
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.OrganID != nil {
		query = query.Where("organ_id = ?", *filter.OrganID)
	}
	if filter.VendorID != nil {
		query = query.Where("vendor_id = ?", *filter.VendorID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Organ").Preload("Labs").
		Order("name ASC, created_at DESC").
		Limit(limit).Offset(offset).
		Find(&tests).Error
	if err != nil {
		return nil, 0, err
	}

	return tests, total, nil
}

func (r *labTestRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.LabTest, error) {
	var test entity.LabTest
	err := db.Preload("Organ").Preload("Labs").Where("id = ?", id).First(&test).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &test, nil
}

func (r *labTestRepository) FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.LabTest, error) {
	var tests []entity.LabTest
	err := db.Preload("Organ").Where("id IN ?", ids).Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *labTestRepository) Update(db *gorm.DB, test *entity.LabTest) error {
	return db.Save(test).Error
}

func (r *labTestRepository) ReplaceLabs(db *gorm.DB, test *entity.LabTest, labs []entity.VendorProfile) error {
	return db.Model(test).Association("Labs").Replace(labs)
}

func (r *labTestRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.LabTest{}).Error
}
