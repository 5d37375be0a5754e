package assignment

import (
	"context"
	"time"
)

// StatusFilter selects assignments by lifecycle state.
type StatusFilter string

const (
	StatusAny      StatusFilter = ""
	StatusActive   StatusFilter = "active"
	StatusExpended StatusFilter = "expended"
)

// Filter narrows assignment listings. BaseID filters on the linked asset's
// current base.
type Filter struct {
	AssetID     *uint
	PersonnelID *uint
	Status      StatusFilter
	BaseID      *uint
	StartDate   *time.Time
	EndDate     *time.Time
	Page        int
	Limit       int
}

type Repository interface {
	Create(ctx context.Context, a *Assignment) error
	GetByID(ctx context.Context, id uint) (*Assignment, error)
	// GetActiveByAssetID returns the open assignment for an asset, or nil.
	GetActiveByAssetID(ctx context.Context, assetID uint) (*Assignment, error)
	Update(ctx context.Context, a *Assignment) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter Filter) ([]*Assignment, int64, error)
	ListByAsset(ctx context.Context, assetID uint) ([]*Assignment, error)
	ListByPersonnel(ctx context.Context, personnelID uint) ([]*Assignment, error)
}
