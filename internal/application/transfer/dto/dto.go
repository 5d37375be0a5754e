package dto

import "time"

// TransferDTO is the public transfer representation.
type TransferDTO struct {
	ID            uint      `json:"id"`
	AssetID       uint      `json:"asset_id"`
	FromBaseID    uint      `json:"from_base_id"`
	ToBaseID      uint      `json:"to_base_id"`
	Quantity      int       `json:"quantity"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`
	TransferredBy string    `json:"transferred_by"`
	Reason        string    `json:"reason"`
}
