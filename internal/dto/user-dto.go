package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

// UserProfileDTO is what /users/me returns: everything except credentials.
type UserProfileDTO struct {
	ID        string      `json:"id"`
	FullName  string      `json:"full_name"`
	Email     string      `json:"email"`
	CPF       string      `json:"cpf"`
	Phone     null.String `json:"phone"`
	CreatedAt time.Time   `json:"created_at"`
}

// UpdateProfileDTO patches the self-service profile fields. Phone may be
// explicitly set to null to clear it.
type UpdateProfileDTO struct {
	FullName *string      `json:"full_name" validate:"omitempty,min=3"`
	Phone    *null.String `json:"phone"`
}
