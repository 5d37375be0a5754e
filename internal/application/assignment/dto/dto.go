package dto

import "time"

// AssignmentDTO is the public assignment representation. ExpendedDate is nil
// while the assignment is active.
type AssignmentDTO struct {
	ID           uint       `json:"id"`
	AssetID      uint       `json:"asset_id"`
	PersonnelID  uint       `json:"personnel_id"`
	AssignedAt   time.Time  `json:"assigned_at"`
	ExpendedDate *time.Time `json:"expended_date"`
	AssignedBy   string     `json:"assigned_by,omitempty"`
}
