package converter

import (
	"diagnolab/internal/delivery/dto"
	"diagnolab/internal/domain/entity"
)

// PackageToResponse converts a TestPackage entity to PackageResponse DTO
func PackageToResponse(pkg *entity.TestPackage) *dto.PackageResponse {
	if pkg == nil {
		return nil
	}

	return &dto.PackageResponse{
		ID:          pkg.ID,
		Name:        pkg.Name,
		Description: pkg.Description,
		Price:       pkg.Price,
		Status:      string(pkg.Status),
		Tests:       TestsToResponses(pkg.Tests),
		CreatedAt:   pkg.CreatedAt,
		UpdatedAt:   pkg.UpdatedAt,
	}
}

// PackagesToResponses converts a slice of TestPackage entities
func PackagesToResponses(packages []entity.TestPackage) []dto.PackageResponse {
	responses := make([]dto.PackageResponse, len(packages))
	for i, pkg := range packages {
		resp := PackageToResponse(&pkg)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
