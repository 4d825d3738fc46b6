package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Equipment categories, mirroring the equipment_type enum in Postgres.
const (
	TypeColheitadeira = "colheitadeira"
	TypeTrator        = "trator"
	TypePulverizador  = "pulverizador"
	TypePlantadeira   = "plantadeira"
)

// EquipmentTypes lists every valid category.
var EquipmentTypes = []string{TypeColheitadeira, TypeTrator, TypePulverizador, TypePlantadeira}

func IsValidEquipmentType(t string) bool {
	for _, v := range EquipmentTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Equipment is one rentable machine listing. Price is carried as a string
// with exactly two fractional digits end to end.
type Equipment struct {
	ID          string      `json:"id"`
	OwnerID     string      `json:"owner_id"`
	Type        string      `json:"type"`
	Brand       string      `json:"brand"`
	Model       string      `json:"model"`
	Year        null.Int    `json:"year"`
	Condition   string      `json:"condition"`
	Price       string      `json:"price"`
	City        string      `json:"city"`
	State       null.String `json:"state"`
	Description null.String `json:"description"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   time.Time   `json:"created_at"`
}

// EquipmentWithCover decorates a listing row with its cover photo URL. The
// cover is the most recently created photo; null when the equipment has no
// photos yet.
type EquipmentWithCover struct {
	Equipment
	Cover null.String `json:"cover"`
}

// EquipmentDetail is the public detail view: the listing, the owner's
// contact phone and the full photo collection, newest first. Exposing the
// phone without authentication is intentional, it is how renters reach the
// owner.
type EquipmentDetail struct {
	Equipment
	OwnerPhone null.String `json:"owner_phone"`
	Photos     []Photo     `json:"photos"`
}
