package response

import (
	"trip-booking/internal/data/entity"
)

type ProfileResponse struct {
	UUID  string          `json:"uuid"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Phone *string         `json:"phone,omitempty"`
	Role  entity.UserRole `json:"role"`
}

func ProfileToResponse(user *entity.User) ProfileResponse {
	return ProfileResponse{
		UUID:  user.UUID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Role:  user.Role,
	}
}
