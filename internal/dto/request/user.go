package request

type UpdateProfileRequest struct {
	Name  string  `json:"name" validate:"required,min=2,max=100"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,min=8,max=20"`
}
