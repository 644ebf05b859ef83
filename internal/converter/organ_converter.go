package converter

import (
	"diagnolab/internal/delivery/dto"
	"diagnolab/internal/domain/entity"
)

// OrganToResponse converts an Organ entity to OrganResponse DTO
func OrganToResponse(organ *entity.Organ) *dto.OrganResponse {
	if organ == nil {
		return nil
	}

	return &dto.OrganResponse{
		ID:        organ.ID,
		Name:      organ.Name,
		Status:    string(organ.Status),
		CreatedAt: organ.CreatedAt,
		UpdatedAt: organ.UpdatedAt,
	}
}

// OrgansToResponses converts a slice of Organ entities
func OrgansToResponses(organs []entity.Organ) []dto.OrganResponse {
	responses := make([]dto.OrganResponse, len(organs))
	for i, organ := range organs {
		resp := OrganToResponse(&organ)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
