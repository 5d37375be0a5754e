package models

import (
	"time"

	"garrison/internal/shared/constants"
)

// AssignmentModel is the persistence row for issued equipment. A row is
// active while ExpendedDate is null.
type AssignmentModel struct {
	ID           uint      `gorm:"primarykey"`
	AssetID      uint      `gorm:"not null;index"`
	PersonnelID  uint      `gorm:"not null;index"`
	AssignedAt   time.Time `gorm:"not null"`
	ExpendedDate *time.Time
	AssignedBy   string `gorm:"size:100"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AssignmentModel) TableName() string {
	return constants.TableAssignments
}
