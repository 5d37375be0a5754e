package models

import (
	"time"

	"garrison/internal/shared/constants"
)

// TransferModel is the persistence row for asset relocations.
type TransferModel struct {
	ID            uint      `gorm:"primarykey"`
	AssetID       uint      `gorm:"not null;index"`
	FromBaseID    uint      `gorm:"not null;index"`
	ToBaseID      uint      `gorm:"not null;index"`
	Quantity      int       `gorm:"not null;default:1"`
	Date          time.Time `gorm:"not null;index"`
	Status        string    `gorm:"not null;size:30"`
	TransferredBy string    `gorm:"size:100"`
	Reason        string    `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (TransferModel) TableName() string {
	return constants.TableTransfers
}
