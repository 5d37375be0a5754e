// Package transfer models the relocation of one asset unit between bases.
package transfer

import (
	"fmt"
	"time"

	"garrison/internal/shared/errors"
)

type Transfer struct {
	id            uint
	assetID       uint
	fromBaseID    uint
	toBaseID      uint
	quantity      int
	date          time.Time
	status        string
	transferredBy string
	reason        string
}

func NewTransfer(assetID, fromBaseID, toBaseID uint, quantity int, date time.Time, status, transferredBy, reason string) (*Transfer, error) {
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID is required")
	}
	if fromBaseID == toBaseID {
		return nil, errors.NewInvalidTransferError("Cannot transfer to same base")
	}
	if quantity < 1 {
		quantity = 1
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}
	if status == "" {
		status = "In Progress"
	}
	return &Transfer{
		assetID:       assetID,
		fromBaseID:    fromBaseID,
		toBaseID:      toBaseID,
		quantity:      quantity,
		date:          date,
		status:        status,
		transferredBy: transferredBy,
		reason:        reason,
	}, nil
}

func ReconstructTransfer(
	id, assetID, fromBaseID, toBaseID uint,
	quantity int,
	date time.Time,
	status, transferredBy, reason string,
) (*Transfer, error) {
	if id == 0 {
		return nil, fmt.Errorf("transfer ID cannot be zero")
	}
	return &Transfer{
		id:            id,
		assetID:       assetID,
		fromBaseID:    fromBaseID,
		toBaseID:      toBaseID,
		quantity:      quantity,
		date:          date,
		status:        status,
		transferredBy: transferredBy,
		reason:        reason,
	}, nil
}

func (t *Transfer) ID() uint              { return t.id }
func (t *Transfer) AssetID() uint         { return t.assetID }
func (t *Transfer) FromBaseID() uint      { return t.fromBaseID }
func (t *Transfer) ToBaseID() uint        { return t.toBaseID }
func (t *Transfer) Quantity() int         { return t.quantity }
func (t *Transfer) Date() time.Time       { return t.date }
func (t *Transfer) Status() string        { return t.status }
func (t *Transfer) TransferredBy() string { return t.transferredBy }
func (t *Transfer) Reason() string        { return t.reason }

func (t *Transfer) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("transfer ID already set")
	}
	if id == 0 {
		return fmt.Errorf("transfer ID cannot be zero")
	}
	t.id = id
	return nil
}

// ApplyUpdate merges an admin partial update; nil fields keep prior values.
// The origin/destination invariant is re-checked after the merge.
func (t *Transfer) ApplyUpdate(upd Update) error {
	if upd.AssetID != nil {
		t.assetID = *upd.AssetID
	}
	if upd.FromBaseID != nil {
		t.fromBaseID = *upd.FromBaseID
	}
	if upd.ToBaseID != nil {
		t.toBaseID = *upd.ToBaseID
	}
	if upd.Quantity != nil {
		t.quantity = *upd.Quantity
	}
	if upd.Date != nil {
		t.date = *upd.Date
	}
	if upd.Status != nil {
		t.status = *upd.Status
	}
	if upd.TransferredBy != nil {
		t.transferredBy = *upd.TransferredBy
	}
	if upd.Reason != nil {
		t.reason = *upd.Reason
	}
	if t.fromBaseID == t.toBaseID {
		return errors.NewInvalidTransferError("Cannot transfer to same base")
	}
	return nil
}

// Update is a typed partial-update request; nil means "keep existing".
type Update struct {
	AssetID       *uint
	FromBaseID    *uint
	ToBaseID      *uint
	Quantity      *int
	Date          *time.Time
	Status        *string
	TransferredBy *string
	Reason        *string
}
