package models

import (
	"time"

	"garrison/internal/shared/constants"
)

// BaseModel is the persistence row for bases. No foreign key constraints or
// associations; relationships are managed by application logic.
type BaseModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex;not null;size:100"`
	Location  string `gorm:"size:200"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (BaseModel) TableName() string {
	return constants.TableBases
}
