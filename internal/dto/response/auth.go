package response

import (
	"time"

	"trip-booking/internal/data/entity"
)

type AuthResponse struct {
	UserUUID  string          `json:"user_id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      entity.UserRole `json:"role"`
	Token     string          `json:"token,omitempty"`
	ExpiresAt time.Time       `json:"expires_at,omitempty"`
}
