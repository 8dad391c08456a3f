package converter

import (
	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:             user.ID,
		Email:          user.Email,
		Role:           user.Role,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Phone:          user.Phone,
		Specialization: user.Specialization,
		LicenseNumber:  user.LicenseNumber,
		Organization:   user.Organization,
		EmailVerified:  user.EmailVerified,
		CreatedAt:      user.CreatedAt,
	}
	if !user.DateOfBirth.IsZero() {
		response.DateOfBirth = user.DateOfBirth.Format("2006-01-02")
	}

	return response
}
