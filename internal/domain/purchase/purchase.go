// Package purchase models an acquisition event. Creating a purchase also
// materializes its quantity as individual asset records; that orchestration
// lives in the application layer.
package purchase

import (
	"fmt"
	"time"
)

type Purchase struct {
	id          uint
	assetType   string
	quantity    int
	baseID      uint
	date        time.Time
	status      string
	approvedBy  string
	requestedBy string
}

func NewPurchase(assetType string, quantity int, baseID uint, date time.Time, status, approvedBy, requestedBy string) (*Purchase, error) {
	if assetType == "" {
		return nil, fmt.Errorf("asset type is required")
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}
	if baseID == 0 {
		return nil, fmt.Errorf("base ID is required")
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}
	if status == "" {
		status = "Pending"
	}
	return &Purchase{
		assetType:   assetType,
		quantity:    quantity,
		baseID:      baseID,
		date:        date,
		status:      status,
		approvedBy:  approvedBy,
		requestedBy: requestedBy,
	}, nil
}

func ReconstructPurchase(
	id uint,
	assetType string,
	quantity int,
	baseID uint,
	date time.Time,
	status, approvedBy, requestedBy string,
) (*Purchase, error) {
	if id == 0 {
		return nil, fmt.Errorf("purchase ID cannot be zero")
	}
	return &Purchase{
		id:          id,
		assetType:   assetType,
		quantity:    quantity,
		baseID:      baseID,
		date:        date,
		status:      status,
		approvedBy:  approvedBy,
		requestedBy: requestedBy,
	}, nil
}

func (p *Purchase) ID() uint            { return p.id }
func (p *Purchase) AssetType() string   { return p.assetType }
func (p *Purchase) Quantity() int       { return p.quantity }
func (p *Purchase) BaseID() uint        { return p.baseID }
func (p *Purchase) Date() time.Time     { return p.date }
func (p *Purchase) Status() string      { return p.status }
func (p *Purchase) ApprovedBy() string  { return p.approvedBy }
func (p *Purchase) RequestedBy() string { return p.requestedBy }

func (p *Purchase) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("purchase ID already set")
	}
	if id == 0 {
		return fmt.Errorf("purchase ID cannot be zero")
	}
	p.id = id
	return nil
}

// ApplyUpdate merges a partial update; nil fields keep prior values. Already
// materialized assets are untouched by quantity changes.
func (p *Purchase) ApplyUpdate(upd Update) {
	if upd.AssetType != nil {
		p.assetType = *upd.AssetType
	}
	if upd.Quantity != nil {
		p.quantity = *upd.Quantity
	}
	if upd.Date != nil {
		p.date = *upd.Date
	}
	if upd.Status != nil {
		p.status = *upd.Status
	}
	if upd.ApprovedBy != nil {
		p.approvedBy = *upd.ApprovedBy
	}
	if upd.RequestedBy != nil {
		p.requestedBy = *upd.RequestedBy
	}
}

// Update is a typed partial-update request; nil means "keep existing".
type Update struct {
	AssetType   *string
	Quantity    *int
	Date        *time.Time
	Status      *string
	ApprovedBy  *string
	RequestedBy *string
}
