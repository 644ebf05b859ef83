package converter

import (
	"diagnolab/internal/delivery/dto"
	"diagnolab/internal/domain/entity"
)

// UserToResponse converts a User entity with its role and profile to a
// UserResponse DTO
func UserToResponse(user *entity.User, roleName string) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      roleName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.VendorProfile != nil {
		response.VendorProfile = &dto.VendorProfileResponse{
			LabName:        user.VendorProfile.LabName,
			LicenseNumber:  user.VendorProfile.LicenseNumber,
			PhoneNumber:    user.VendorProfile.PhoneNumber,
			Address:        user.VendorProfile.Address,
			City:           user.VendorProfile.City,
			ApprovalStatus: string(user.VendorProfile.ApprovalStatus),
		}
	}

	if user.PatientProfile != nil {
		response.PatientProfile = &dto.PatientProfileResponse{
			PhoneNumber: user.PatientProfile.PhoneNumber,
			Gender:      user.PatientProfile.Gender,
			Address:     user.PatientProfile.Address,
		}
		if !user.PatientProfile.DateOfBirth.IsZero() {
			response.PatientProfile.DateOfBirth = user.PatientProfile.DateOfBirth.Format("2006-01-02")
		}
	}

	return response
}

// VendorToResponse flattens a vendor profile with its user account
func VendorToResponse(profile *entity.VendorProfile) *dto.VendorResponse {
	if profile == nil {
		return nil
	}

	return &dto.VendorResponse{
		UserID:         profile.UserID,
		Email:          profile.User.Email,
		FullName:       profile.User.FullName,
		LabName:        profile.LabName,
		LicenseNumber:  profile.LicenseNumber,
		PhoneNumber:    profile.PhoneNumber,
		Address:        profile.Address,
		City:           profile.City,
		ApprovalStatus: string(profile.ApprovalStatus),
		CreatedAt:      profile.CreatedAt,
		UpdatedAt:      profile.UpdatedAt,
	}
}

// VendorsToResponses converts a slice of VendorProfile entities
func VendorsToResponses(profiles []entity.VendorProfile) []dto.VendorResponse {
	responses := make([]dto.VendorResponse, len(profiles))
	for i, profile := range profiles {
		resp := VendorToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
