// Package assignment models the record of an asset being held by a person.
// An assignment is active while its expended date is unset; at most one
// active assignment may exist per asset.
package assignment

import (
	"fmt"
	"time"

	"garrison/internal/shared/errors"
)

type Assignment struct {
	id           uint
	assetID      uint
	personnelID  uint
	assignedAt   time.Time
	expendedDate *time.Time
	assignedBy   string
}

func NewAssignment(assetID, personnelID uint, assignedAt time.Time, assignedBy string) (*Assignment, error) {
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID is required")
	}
	if personnelID == 0 {
		return nil, fmt.Errorf("personnel ID is required")
	}
	if assignedAt.IsZero() {
		assignedAt = time.Now().UTC()
	}
	return &Assignment{
		assetID:     assetID,
		personnelID: personnelID,
		assignedAt:  assignedAt,
		assignedBy:  assignedBy,
	}, nil
}

func ReconstructAssignment(
	id, assetID, personnelID uint,
	assignedAt time.Time,
	expendedDate *time.Time,
	assignedBy string,
) (*Assignment, error) {
	if id == 0 {
		return nil, fmt.Errorf("assignment ID cannot be zero")
	}
	return &Assignment{
		id:           id,
		assetID:      assetID,
		personnelID:  personnelID,
		assignedAt:   assignedAt,
		expendedDate: expendedDate,
		assignedBy:   assignedBy,
	}, nil
}

func (a *Assignment) ID() uint                  { return a.id }
func (a *Assignment) AssetID() uint             { return a.assetID }
func (a *Assignment) PersonnelID() uint         { return a.personnelID }
func (a *Assignment) AssignedAt() time.Time     { return a.assignedAt }
func (a *Assignment) ExpendedDate() *time.Time  { return a.expendedDate }
func (a *Assignment) AssignedBy() string        { return a.assignedBy }

// Active reports whether the assignment is still open.
func (a *Assignment) Active() bool {
	return a.expendedDate == nil
}

func (a *Assignment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("assignment ID already set")
	}
	if id == 0 {
		return fmt.Errorf("assignment ID cannot be zero")
	}
	a.id = id
	return nil
}

// Expend closes the assignment. Despite the name this marks the asset as
// returned, not consumed; the linked asset goes back to available.
func (a *Assignment) Expend(date time.Time) error {
	if a.expendedDate != nil {
		return errors.NewAlreadyExpendedError()
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}
	a.expendedDate = &date
	return nil
}

// ApplyUpdate merges an admin partial update; nil fields keep prior values.
func (a *Assignment) ApplyUpdate(upd Update) {
	if upd.AssetID != nil {
		a.assetID = *upd.AssetID
	}
	if upd.PersonnelID != nil {
		a.personnelID = *upd.PersonnelID
	}
	if upd.AssignedAt != nil {
		a.assignedAt = *upd.AssignedAt
	}
	if upd.ExpendedDate != nil {
		a.expendedDate = upd.ExpendedDate
	}
	if upd.AssignedBy != nil {
		a.assignedBy = *upd.AssignedBy
	}
}

// Update is a typed partial-update request; nil means "keep existing".
type Update struct {
	AssetID      *uint
	PersonnelID  *uint
	AssignedAt   *time.Time
	ExpendedDate *time.Time
	AssignedBy   *string
}
