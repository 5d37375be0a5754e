package asset

import (
	"fmt"
	"strings"
	"time"

	"garrison/internal/shared/errors"
)

// Asset is one physical unit of equipment, uniquely serial-numbered. Its
// base_id tracks the current location and mutates on transfer; its status
// follows the assignment lifecycle.
type Asset struct {
	id           uint
	name         string
	assetType    string
	description  string
	serialNumber string
	baseID       uint
	status       Status
	value        *int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewAsset creates an asset in the available state unless an explicit status
// is given (admin creation path).
func NewAsset(name, assetType, description, serialNumber string, baseID uint, status Status, value *int) (*Asset, error) {
	if assetType == "" {
		return nil, fmt.Errorf("asset type is required")
	}
	if baseID == 0 {
		return nil, fmt.Errorf("base ID is required")
	}
	if status == "" {
		status = StatusAvailable
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid asset status: %s", status)
	}

	now := time.Now().UTC()
	return &Asset{
		name:         name,
		assetType:    assetType,
		description:  description,
		serialNumber: serialNumber,
		baseID:       baseID,
		status:       status,
		value:        value,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// NewPurchasedAsset materializes one unit of a purchase. The serial number is
// {TYPE}-{unix millis}-{index}, matching what is printed on issue paperwork.
func NewPurchasedAsset(assetType string, purchaseID uint, baseID uint, index int, batchTime time.Time) (*Asset, error) {
	serial := fmt.Sprintf("%s-%d-%d", strings.ToUpper(assetType), batchTime.UnixMilli(), index+1)
	description := fmt.Sprintf("%s - Purchase %d", assetType, purchaseID)
	return NewAsset(assetType, assetType, description, serial, baseID, StatusAvailable, nil)
}

// ReconstructAsset rebuilds an asset from persistence.
func ReconstructAsset(
	id uint,
	name, assetType, description, serialNumber string,
	baseID uint,
	status Status,
	value *int,
	createdAt, updatedAt time.Time,
) (*Asset, error) {
	if id == 0 {
		return nil, fmt.Errorf("asset ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid asset status: %s", status)
	}
	return &Asset{
		id:           id,
		name:         name,
		assetType:    assetType,
		description:  description,
		serialNumber: serialNumber,
		baseID:       baseID,
		status:       status,
		value:        value,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (a *Asset) ID() uint              { return a.id }
func (a *Asset) Name() string          { return a.name }
func (a *Asset) Type() string          { return a.assetType }
func (a *Asset) Description() string   { return a.description }
func (a *Asset) SerialNumber() string  { return a.serialNumber }
func (a *Asset) BaseID() uint          { return a.baseID }
func (a *Asset) Status() Status        { return a.status }
func (a *Asset) Value() *int           { return a.value }
func (a *Asset) CreatedAt() time.Time  { return a.createdAt }
func (a *Asset) UpdatedAt() time.Time  { return a.updatedAt }

// SetID is called by the repository after insertion.
func (a *Asset) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("asset ID already set")
	}
	if id == 0 {
		return fmt.Errorf("asset ID cannot be zero")
	}
	a.id = id
	return nil
}

// Assign moves the asset into the assigned state. Only an available asset
// may be assigned.
func (a *Asset) Assign() error {
	if a.status != StatusAvailable {
		return errors.NewAssetNotAvailableError("Asset is not available for assignment")
	}
	a.status = StatusAssigned
	a.touch()
	return nil
}

// Release returns the asset to available when its assignment is expended.
// Assets in maintenance or retired keep their state.
func (a *Asset) Release() {
	if a.status == StatusAssigned {
		a.status = StatusAvailable
		a.touch()
	}
}

// RelocateTo moves the asset to another base. Transfers require the asset to
// be available; the status is unchanged by the move.
func (a *Asset) RelocateTo(baseID uint) error {
	if a.status != StatusAvailable {
		return errors.NewAssetNotAvailableError("Asset is not available for transfer")
	}
	a.baseID = baseID
	a.touch()
	return nil
}

// ApplyUpdate merges an admin partial update; nil fields keep prior values.
func (a *Asset) ApplyUpdate(upd Update) error {
	if upd.Name != nil {
		a.name = *upd.Name
	}
	if upd.Type != nil {
		a.assetType = *upd.Type
	}
	if upd.Description != nil {
		a.description = *upd.Description
	}
	if upd.SerialNumber != nil {
		a.serialNumber = *upd.SerialNumber
	}
	if upd.BaseID != nil {
		a.baseID = *upd.BaseID
	}
	if upd.Status != nil {
		status := Status(*upd.Status)
		if !status.IsValid() {
			return errors.NewValidationError(fmt.Sprintf("invalid asset status: %s", *upd.Status))
		}
		a.status = status
	}
	if upd.Value != nil {
		a.value = upd.Value
	}
	a.touch()
	return nil
}

// Update is a typed partial-update request; nil means "keep existing".
type Update struct {
	Name         *string
	Type         *string
	Description  *string
	SerialNumber *string
	BaseID       *uint
	Status       *string
	Value        *int
}

func (a *Asset) touch() {
	a.updatedAt = time.Now().UTC()
}
