package models

import (
	"time"

	"garrison/internal/shared/constants"
)

// PurchaseModel is the persistence row for acquisition events.
type PurchaseModel struct {
	ID          uint      `gorm:"primarykey"`
	AssetType   string    `gorm:"not null;size:50;index"`
	Quantity    int       `gorm:"not null"`
	BaseID      uint      `gorm:"not null;index"`
	Date        time.Time `gorm:"not null;index"`
	Status      string    `gorm:"not null;size:20;default:Pending"`
	ApprovedBy  string `gorm:"size:100"`
	RequestedBy string `gorm:"size:100"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PurchaseModel) TableName() string {
	return constants.TablePurchases
}
