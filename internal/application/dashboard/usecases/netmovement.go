package usecases

import (
	"context"
	"time"

	"garrison/internal/domain/dashboard"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/logger"
)

type NetMovementQuery struct {
	Identity  authorization.Identity
	BaseID    *uint
	StartDate *time.Time
	EndDate   *time.Time
}

type NetMovementResult struct {
	Purchases    []dashboard.PurchaseDetail
	TransfersIn  []dashboard.TransferDetail
	TransfersOut []dashboard.TransferDetail
}

// NetMovementUseCase expands the netMovement figure into its contributing
// rows, newest first.
type NetMovementUseCase struct {
	ledger dashboard.LedgerReader
	logger logger.Interface
}

func NewNetMovementUseCase(ledger dashboard.LedgerReader, logger logger.Interface) *NetMovementUseCase {
	return &NetMovementUseCase{ledger: ledger, logger: logger}
}

func (uc *NetMovementUseCase) Execute(ctx context.Context, query NetMovementQuery) (*NetMovementResult, error) {
	scope := resolveScope(query.Identity, query.BaseID, "", query.StartDate, query.EndDate)

	purchases, err := uc.ledger.PurchaseDetails(ctx, scope)
	if err != nil {
		uc.logger.Errorw("failed to load purchase details", "error", err)
		return nil, err
	}
	in, err := uc.ledger.TransferInDetails(ctx, scope)
	if err != nil {
		uc.logger.Errorw("failed to load incoming transfer details", "error", err)
		return nil, err
	}
	out, err := uc.ledger.TransferOutDetails(ctx, scope)
	if err != nil {
		uc.logger.Errorw("failed to load outgoing transfer details", "error", err)
		return nil, err
	}

	return &NetMovementResult{
		Purchases:    purchases,
		TransfersIn:  in,
		TransfersOut: out,
	}, nil
}
