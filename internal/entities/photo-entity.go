package entities

import "time"

// Photo is one image attached to an equipment listing. Photos are ordered
// by creation time, id as tie-break, newest first.
type Photo struct {
	ID          string    `json:"id"`
	EquipmentID string    `json:"equipment_id"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
}
