package usecase

import (
	"context"
	"errors"

	"diagnolab/internal/converter"
	"diagnolab/internal/delivery/dto"
	"diagnolab/internal/domain/entity"
	"diagnolab/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrFaqNotFound = errors.New("faq not found")

type FaqUsecase interface {
	CreateFaq(ctx context.Context, req *dto.CreateFaqRequest) (*dto.FaqResponse, error)
	GetFaqs(ctx context.Context) ([]dto.FaqResponse, error)
	UpdateFaq(ctx context.Context, id uuid.UUID, req *dto.UpdateFaqRequest) (*dto.FaqResponse, error)
	DeleteFaq(ctx context.Context, id uuid.UUID) error
}

type faqUsecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	faqRepo repository.FaqRepository
}

func NewFaqUsecase(db *gorm.DB, log *logrus.Logger, faqRepo repository.FaqRepository) FaqUsecase {
	return &faqUsecase{
		db:      db,
		log:     log,
		faqRepo: faqRepo,
	}
}

func (u *faqUsecase) CreateFaq(ctx context.Context, req *dto.CreateFaqRequest) (*dto.FaqResponse, error) {
	faq := &entity.Faq{
		Question: req.Question,
		Answer:   req.Answer,
		Position: req.Position,
	}

	if err := u.faqRepo.Create(u.db.WithContext(ctx), faq); err != nil {
		u.log.Warnf("Failed to create faq: %+v", err)
		return nil, err
	}

	return converter.FaqToResponse(faq), nil
}

func (u *faqUsecase) GetFaqs(ctx context.Context) ([]dto.FaqResponse, error) {
	faqs, err := u.faqRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find faqs: %+v", err)
		return nil, err
	}
	return converter.FaqsToResponses(faqs), nil
}

func (u *faqUsecase) UpdateFaq(ctx context.Context, id uuid.UUID, req *dto.UpdateFaqRequest) (*dto.FaqResponse, error) {
	db := u.db.WithContext(ctx)

	faq, err := u.faqRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find faq: %+v", err)
		return nil, err
	}
	if faq == nil {
		return nil, ErrFaqNotFound
	}

	faq.Question = req.Question
	faq.Answer = req.Answer
	faq.Position = req.Position

	if err := u.faqRepo.Update(db, faq); err != nil {
		u.log.Warnf("Failed to update faq: %+v", err)
		return nil, err
	}

	return converter.FaqToResponse(faq), nil
}

func (u *faqUsecase) DeleteFaq(ctx context.Context, id uuid.UUID) error {
	db := u.db.WithContext(ctx)

	faq, err := u.faqRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find faq: %+v", err)
		return err
	}
	if faq == nil {
		return ErrFaqNotFound
	}

	if err := u.faqRepo.Delete(db, id); err != nil {
		u.log.Warnf("Failed to delete faq: %+v", err)
		return err
	}

	return nil
}
