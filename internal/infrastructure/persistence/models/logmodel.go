package models

import (
	"time"

	"gorm.io/datatypes"

	"garrison/internal/shared/constants"
)

// LogModel is the persistence row for audit entries. Rows are append-only.
type LogModel struct {
	ID        uint           `gorm:"primarykey"`
	UserID    uint           `gorm:"not null;index"`
	Action    string         `gorm:"not null;size:100;index"`
	Details   datatypes.JSON `gorm:"type:json"`
	Timestamp time.Time      `gorm:"not null;index"`
	IPAddress string         `gorm:"size:45"`
	CreatedAt time.Time
}

func (LogModel) TableName() string {
	return constants.TableLogs
}
