package models

import (
	"time"

	"garrison/internal/shared/constants"
)

// UserModel is the persistence row for users. This is the anti-corruption
// layer between domain and database.
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"not null;size:100"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `gorm:"not null;size:255"`
	Role         string `gorm:"not null;size:30;index"`
	BaseID       *uint  `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
