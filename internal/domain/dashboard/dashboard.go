// Package dashboard defines the aggregate metrics served to commanders.
package dashboard

import (
	"context"
	"time"
)

// Metrics is the dashboard summary for a base over a date range.
type Metrics struct {
	OpeningBalance int64 `json:"openingBalance"`
	ClosingBalance int64 `json:"closingBalance"`
	NetMovement    int64 `json:"netMovement"`
	Purchases      int64 `json:"purchases"`
	TransfersIn    int64 `json:"transfersIn"`
	TransfersOut   int64 `json:"transfersOut"`
	AssignedAssets int64 `json:"assignedAssets"`
	ExpendedAssets int64 `json:"expendedAssets"`
}

// Scope restricts metrics queries. A nil BaseID means fleet-wide, which only
// admins may request.
type Scope struct {
	BaseID        *uint
	EquipmentType string
	Start         time.Time
	End           time.Time
}

// PurchaseDetail is one row of the net-movement purchase breakdown.
type PurchaseDetail struct {
	ID        uint      `json:"id"`
	AssetType string    `json:"assetType"`
	Quantity  int       `json:"quantity"`
	BaseID    uint      `json:"baseId"`
	Date      time.Time `json:"purchaseDate"`
}

// TransferDetail is one row of the net-movement transfer breakdown.
type TransferDetail struct {
	ID         uint      `json:"id"`
	AssetID    uint      `json:"assetId"`
	FromBaseID uint      `json:"fromBaseId"`
	ToBaseID   uint      `json:"toBaseId"`
	Quantity   int       `json:"quantity"`
	Date       time.Time `json:"transferDate"`
}

// LedgerReader answers the aggregate queries behind the dashboard. It is
// implemented against the asset, purchase, transfer and assignment tables.
type LedgerReader interface {
	AssetsCreatedBefore(ctx context.Context, scope Scope, cutoff time.Time) (int64, error)
	AssetsCreatedOnOrBefore(ctx context.Context, scope Scope, cutoff time.Time) (int64, error)
	PurchasedQuantity(ctx context.Context, scope Scope) (int64, error)
	TransferredInQuantity(ctx context.Context, scope Scope) (int64, error)
	TransferredOutQuantity(ctx context.Context, scope Scope) (int64, error)
	AssignedCount(ctx context.Context, scope Scope) (int64, error)
	ExpendedCount(ctx context.Context, scope Scope) (int64, error)
	PurchaseDetails(ctx context.Context, scope Scope) ([]PurchaseDetail, error)
	TransferInDetails(ctx context.Context, scope Scope) ([]TransferDetail, error)
	TransferOutDetails(ctx context.Context, scope Scope) ([]TransferDetail, error)
}
