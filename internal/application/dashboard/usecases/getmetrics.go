package usecases

import (
	"context"
	"time"

	"garrison/internal/domain/dashboard"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/logger"
)

type GetMetricsQuery struct {
	Identity      authorization.Identity
	BaseID        *uint
	EquipmentType string
	StartDate     *time.Time
	EndDate       *time.Time
}

// GetMetricsUseCase computes the period summary. Opening balance counts
// assets that existed before the period, closing balance those existing by
// its end; net movement is purchases plus transfers in minus transfers out.
type GetMetricsUseCase struct {
	ledger dashboard.LedgerReader
	logger logger.Interface
}

func NewGetMetricsUseCase(ledger dashboard.LedgerReader, logger logger.Interface) *GetMetricsUseCase {
	return &GetMetricsUseCase{ledger: ledger, logger: logger}
}

func (uc *GetMetricsUseCase) Execute(ctx context.Context, query GetMetricsQuery) (*dashboard.Metrics, error) {
	scope := resolveScope(query.Identity, query.BaseID, query.EquipmentType, query.StartDate, query.EndDate)

	opening, err := uc.ledger.AssetsCreatedBefore(ctx, scope, scope.Start)
	if err != nil {
		return nil, uc.fail(err)
	}
	closing, err := uc.ledger.AssetsCreatedOnOrBefore(ctx, scope, scope.End)
	if err != nil {
		return nil, uc.fail(err)
	}
	purchased, err := uc.ledger.PurchasedQuantity(ctx, scope)
	if err != nil {
		return nil, uc.fail(err)
	}
	in, err := uc.ledger.TransferredInQuantity(ctx, scope)
	if err != nil {
		return nil, uc.fail(err)
	}
	out, err := uc.ledger.TransferredOutQuantity(ctx, scope)
	if err != nil {
		return nil, uc.fail(err)
	}
	assigned, err := uc.ledger.AssignedCount(ctx, scope)
	if err != nil {
		return nil, uc.fail(err)
	}
	expended, err := uc.ledger.ExpendedCount(ctx, scope)
	if err != nil {
		return nil, uc.fail(err)
	}

	return &dashboard.Metrics{
		OpeningBalance: opening,
		ClosingBalance: closing,
		NetMovement:    purchased + in - out,
		Purchases:      purchased,
		TransfersIn:    in,
		TransfersOut:   out,
		AssignedAssets: assigned,
		ExpendedAssets: expended,
	}, nil
}

func (uc *GetMetricsUseCase) fail(err error) error {
	uc.logger.Errorw("failed to compute dashboard metrics", "error", err)
	return err
}

// resolveScope pins non-admins to their own base; admins may pass an explicit
// base_id or see the whole fleet. An empty range means "everything to date".
func resolveScope(identity authorization.Identity, baseID *uint, equipmentType string, start, end *time.Time) dashboard.Scope {
	scope := dashboard.Scope{
		BaseID:        baseID,
		EquipmentType: equipmentType,
		Start:         time.Unix(0, 0).UTC(),
		End:           time.Now().UTC(),
	}
	if !identity.Role.IsAdmin() {
		scope.BaseID = identity.BaseID
	}
	if start != nil {
		scope.Start = *start
	}
	if end != nil {
		scope.End = *end
	}
	return scope
}
