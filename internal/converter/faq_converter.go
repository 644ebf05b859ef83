package converter

import (
	"diagnolab/internal/delivery/dto"
	"diagnolab/internal/domain/entity"
)

func FaqToResponse(faq *entity.Faq) *dto.FaqResponse {
	if faq == nil {
		return nil
	}

	return &dto.FaqResponse{
		ID:        faq.ID,
		Question:  faq.Question,
		Answer:    faq.Answer,
		Position:  faq.Position,
		CreatedAt: faq.CreatedAt,
		UpdatedAt: faq.UpdatedAt,
	}
}

func FaqsToResponses(faqs []entity.Faq) []dto.FaqResponse {
	responses := make([]dto.FaqResponse, len(faqs))
	for i, faq := range faqs {
		resp := FaqToResponse(&faq)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
