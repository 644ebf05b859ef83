package converter

import (
	"diagnolab/internal/delivery/dto"
	"diagnolab/internal/domain/entity"
)

// TestToResponse converts a LabTest entity to TestResponse DTO
func TestToResponse(test *entity.LabTest) *dto.TestResponse {
	if test == nil {
		return nil
	}

	response := &dto.TestResponse{
		ID:          test.ID,
		Name:        test.Name,
		VendorID:    test.VendorID,
		Price:       PriceString(test),
		Status:      string(test.Status),
		Overview:    test.Overview,
		Preparation: test.Preparation,
		Importance:  test.Importance,
		ImageURL:    test.ImageURL,
		Category:    test.Category,
		CreatedAt:   test.CreatedAt,
		UpdatedAt:   test.UpdatedAt,
	}

	if test.Organ.Name != "" {
		response.Organ = OrganToResponse(&test.Organ)
	}

	for _, lab := range test.Labs {
		response.Labs = append(response.Labs, dto.LabSummaryResponse{
			VendorID: lab.UserID,
			LabName:  lab.LabName,
			City:     lab.City,
		})
	}

	return response
}

// TestsToResponses converts a slice of LabTest entities
func TestsToResponses(tests []entity.LabTest) []dto.TestResponse {
	responses := make([]dto.TestResponse, len(tests))
	for i, test := range tests {
		resp := TestToResponse(&test)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// GroupTestsByName folds same-name test rows from different vendors
// into display groups, preserving first-appearance order
func GroupTestsByName(tests []entity.LabTest) []dto.TestGroupResponse {
	var groups []dto.TestGroupResponse
	index := make(map[string]int)

	for i := range tests {
		test := &tests[i]

		pos, ok := index[test.Name]
		if !ok {
			pos = len(groups)
			index[test.Name] = pos
			groups = append(groups, dto.TestGroupResponse{Name: test.Name})
		}

		groups[pos].Variants = append(groups[pos].Variants, *TestToResponse(test))
	}

	return groups
}

// PriceString renders the catalog price as a single value or a range
func PriceString(test *entity.LabTest) string {
	if test.HasPriceRange() {
		return test.PriceMin.String() + "-" + test.PriceMax.String()
	}
	return test.PriceMin.String()
}
