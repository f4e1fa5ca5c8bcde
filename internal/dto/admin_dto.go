package dto

type CreateAdminRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Username string  `json:"username" validate:"required,min=3"`
	Password string  `json:"password" validate:"required,min=6"`
	Phone    *string `json:"phone"`
}

// UpdateProfileRequest only touches the fields that are present.
type UpdateProfileRequest struct {
	Email           *string `json:"email" validate:"omitempty,email"`
	Phone           *string `json:"phone"`
	CurrentPassword *string `json:"currentPassword" validate:"required_with=NewPassword"`
	NewPassword     *string `json:"newPassword" validate:"omitempty,min=6"`
}
