package dto

import "time"

// AssetDTO is the public asset representation. AssignedTo is only populated
// on list responses, where the current holder is derived from the open
// assignment; "-" means the asset is unassigned.
type AssetDTO struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	SerialNumber string    `json:"serial_number"`
	BaseID       uint      `json:"base_id"`
	Status       string    `json:"status"`
	Value        *int      `json:"value"`
	AssignedTo   string    `json:"assignedTo,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
