package dto

import "time"

// PurchaseDTO is the public purchase representation.
type PurchaseDTO struct {
	ID          uint      `json:"id"`
	AssetType   string    `json:"asset_type"`
	Quantity    int       `json:"quantity"`
	BaseID      uint      `json:"base_id"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	ApprovedBy  string    `json:"approved_by,omitempty"`
	RequestedBy string    `json:"requested_by,omitempty"`
}
