package dto

type RegisterDTO struct {
	FullName string  `json:"fullName" validate:"required,min=3"`
	Email    string  `json:"email" validate:"required,email"`
	CPF      string  `json:"cpf" validate:"required,cpf"`
	Phone    *string `json:"phone" validate:"omitempty,min=8"`
	Password string  `json:"password" validate:"required,min=6"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponseDTO struct {
	AccessToken string `json:"accessToken"`
}
