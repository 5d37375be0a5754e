package transfer

import (
	"context"
	"time"
)

// Filter narrows transfer listings. TouchingBaseID matches transfers where
// the base appears as either origin or destination, which is how non-admin
// listings are scoped.
type Filter struct {
	AssetID        *uint
	FromBaseID     *uint
	ToBaseID       *uint
	TouchingBaseID *uint
	StartDate      *time.Time
	EndDate        *time.Time
	Page           int
	Limit          int
}

type Repository interface {
	Create(ctx context.Context, t *Transfer) error
	GetByID(ctx context.Context, id uint) (*Transfer, error)
	Update(ctx context.Context, t *Transfer) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter Filter) ([]*Transfer, int64, error)
	// ListByAsset returns the full relocation history of one asset, newest first.
	ListByAsset(ctx context.Context, assetID uint) ([]*Transfer, error)
}
