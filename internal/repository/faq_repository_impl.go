package repository

import (
	"errors"

	"diagnolab/internal/domain/entity"
	domainRepo "diagnolab/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type faqRepository struct{}

func NewFaqRepository() domainRepo.FaqRepository {
	return &faqRepository{}
}

func (r *faqRepository) Create(db *gorm.DB, faq *entity.Faq) error {
	return db.Create(faq).Error
}

func (r *faqRepository) FindAll(db *gorm.DB) ([]entity.Faq, error) {
	var faqs []entity.Faq
	err := db.Order("position ASC, created_at ASC").Find(&faqs).Error
	if err != nil {
		return nil, err
	}
	return faqs, nil
}

func (r *faqRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Faq, error) {
	var faq entity.Faq
	err := db.Where("id = ?", id).First(&faq).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &faq, nil
}

func (r *faqRepository) Update(db *gorm.DB, faq *entity.Faq) error {
	return db.Save(faq).Error
}

func (r *faqRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Faq{}).Error
}
