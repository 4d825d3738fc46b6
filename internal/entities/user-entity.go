package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// User is an account row. PasswordHash never leaves the service layer.
type User struct {
	ID           string      `json:"id"`
	FullName     string      `json:"full_name"`
	Email        string      `json:"email"`
	CPF          string      `json:"cpf"`
	Phone        null.String `json:"phone"`
	PasswordHash string      `json:"-"`
	CreatedAt    time.Time   `json:"created_at"`
}
