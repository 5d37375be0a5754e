package usecases

import (
	"context"

	"garrison/internal/domain/purchase"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/errors"
	"garrison/internal/shared/logger"
)

type DeletePurchaseCommand struct {
	Identity   authorization.Identity
	PurchaseID uint
}

// DeletePurchaseUseCase removes the purchase record. Assets materialized from
// it keep existing; a deleted purchase is an accounting correction, not a
// recall.
type DeletePurchaseUseCase struct {
	purchaseRepo purchase.Repository
	gate         *authorization.Gate
	logger       logger.Interface
}

func NewDeletePurchaseUseCase(
	purchaseRepo purchase.Repository,
	gate *authorization.Gate,
	logger logger.Interface,
) *DeletePurchaseUseCase {
	return &DeletePurchaseUseCase{
		purchaseRepo: purchaseRepo,
		gate:         gate,
		logger:       logger,
	}
}

func (uc *DeletePurchaseUseCase) Execute(ctx context.Context, cmd DeletePurchaseCommand) error {
	found, err := uc.purchaseRepo.GetByID(ctx, cmd.PurchaseID)
	if err != nil {
		return err
	}

	baseID := found.BaseID()
	if err := uc.gate.Authorize(cmd.Identity, authorization.ResourcePurchase, authorization.ActionView, &baseID); err != nil {
		return err
	}
	if !cmd.Identity.Role.IsAdmin() {
		return errors.NewForbiddenError("Only admin can delete purchases")
	}

	if err := uc.purchaseRepo.Delete(ctx, cmd.PurchaseID); err != nil {
		uc.logger.Errorw("failed to delete purchase", "error", err, "purchase_id", cmd.PurchaseID)
		return err
	}

	uc.logger.Infow("purchase deleted", "purchase_id", cmd.PurchaseID)
	return nil
}
