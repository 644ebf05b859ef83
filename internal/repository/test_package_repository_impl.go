package repository

import (
	"errors"

	"diagnolab/internal/domain/entity"
	domainRepo "diagnolab/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type testPackageRepository struct{}

func NewTestPackageRepository() domainRepo.TestPackageRepository {
	return &testPackageRepository{}
}

func (r *testPackageRepository) Create(db *gorm.DB, pkg *entity.TestPackage) error {
	return db.Create(pkg).Error
}

func (r *testPackageRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.TestPackage, int64, error) {
	var packages []entity.TestPackage
	var total int64

	if err := db.Model(&entity.TestPackage{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Tests").Preload("Tests.Organ").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&packages).Error
	if err != nil {
		return nil, 0, err
	}

	return packages, total, nil
}

func (r *testPackageRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.TestPackage, error) {
	var pkg entity.TestPackage
	err := db.Preload("Tests").Preload("Tests.Organ").Where("id = ?", id).First(&pkg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *testPackageRepository) Update(db *gorm.DB, pkg *entity.TestPackage) error {
	return db.Save(pkg).Error
}

func (r *testPackageRepository) ReplaceTests(db *gorm.DB, pkg *entity.TestPackage, tests []entity.LabTest) error {
	return db.Model(pkg).Association("Tests").Replace(tests)
}

func (r *testPackageRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.TestPackage{}).Error
}
