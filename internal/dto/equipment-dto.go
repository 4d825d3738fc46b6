package dto

import "agrorent-api/internal/entities"

// CreateEquipmentDTO binds the multipart form fields of POST /equipments.
// The photos themselves come through the multipart file parts.
type CreateEquipmentDTO struct {
	Type        string  `form:"type" validate:"required,oneof=colheitadeira trator pulverizador plantadeira"`
	Brand       string  `form:"brand" validate:"required"`
	Model       string  `form:"model" validate:"required"`
	Year        *int    `form:"year" validate:"omitempty,year_range"`
	Condition   string  `form:"condition" validate:"required"`
	Price       float64 `form:"price" validate:"required,gt=0"`
	City        string  `form:"city" validate:"required"`
	State       *string `form:"state" validate:"omitempty,br_state"`
	Description *string `form:"description"`
}

// UpdateEquipmentDTO is a partial patch: only non-nil fields are applied.
type UpdateEquipmentDTO struct {
	Type        *string  `json:"type" validate:"omitempty,oneof=colheitadeira trator pulverizador plantadeira"`
	Brand       *string  `json:"brand" validate:"omitempty,min=1"`
	Model       *string  `json:"model" validate:"omitempty,min=1"`
	Year        *int     `json:"year" validate:"omitempty,year_range"`
	Condition   *string  `json:"condition" validate:"omitempty,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	City        *string  `json:"city" validate:"omitempty,min=1"`
	State       *string  `json:"state" validate:"omitempty,br_state"`
	Description *string  `json:"description"`
	IsActive    *bool    `json:"is_active"`
}

// SearchEquipmentDTO binds the query string of GET /equipments/search.
// Page and PageSize are normalized later, never rejected. PageSize is a
// pointer so an omitted parameter (default 10) is distinguishable from an
// explicit low value (clamped to 1).
type SearchEquipmentDTO struct {
	City     string   `query:"city" validate:"required"`
	Type     *string  `query:"type" validate:"omitempty,oneof=colheitadeira trator pulverizador plantadeira"`
	MinPrice *float64 `query:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice *float64 `query:"maxPrice" validate:"omitempty,gte=0"`
	Page     int      `query:"page"`
	PageSize *int     `query:"pageSize"`
}

// SearchResultDTO is the paginated search envelope.
type SearchResultDTO struct {
	Data       []entities.EquipmentWithCover `json:"data"`
	Page       int                           `json:"page"`
	PageSize   int                           `json:"pageSize"`
	Total      uint64                        `json:"total"`
	TotalPages int                           `json:"totalPages"`
}

// CreatedEquipmentDTO is the 201 body of POST /equipments.
type CreatedEquipmentDTO struct {
	entities.Equipment
	Photos []entities.Photo `json:"photos"`
}
