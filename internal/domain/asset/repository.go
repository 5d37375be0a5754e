package asset

import "context"

// Filter narrows asset listings. Zero values mean "no filter".
type Filter struct {
	Type   string
	Status string
	BaseID *uint
	Search string
	Page   int
	Limit  int
}

type Repository interface {
	Create(ctx context.Context, a *Asset) error
	GetByID(ctx context.Context, id uint) (*Asset, error)
	// GetByIDForUpdate locks the asset row for the remainder of the
	// surrounding transaction so check-then-act sequences are race-free.
	GetByIDForUpdate(ctx context.Context, id uint) (*Asset, error)
	Update(ctx context.Context, a *Asset) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter Filter) ([]*Asset, int64, error)
}
