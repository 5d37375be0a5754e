package purchase

import (
	"context"
	"time"
)

// Filter narrows purchase listings. Zero values mean "no filter".
type Filter struct {
	BaseID    *uint
	AssetType string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

type Repository interface {
	Create(ctx context.Context, p *Purchase) error
	GetByID(ctx context.Context, id uint) (*Purchase, error)
	Update(ctx context.Context, p *Purchase) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter Filter) ([]*Purchase, int64, error)
}
