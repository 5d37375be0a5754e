package models

import (
	"time"

	"garrison/internal/shared/constants"
)

// AssetModel is the persistence row for assets.
type AssetModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"not null;size:100"`
	Type         string `gorm:"not null;size:50;index"`
	Description  string `gorm:"type:text"`
	SerialNumber string `gorm:"uniqueIndex;not null;size:100"`
	Status       string `gorm:"not null;size:20;index;default:available"`
	BaseID       uint   `gorm:"not null;index"`
	Value        *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AssetModel) TableName() string {
	return constants.TableAssets
}
