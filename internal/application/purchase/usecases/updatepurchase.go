package usecases

import (
	"context"

	"garrison/internal/application/purchase/dto"
	"garrison/internal/domain/purchase"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/logger"
)

type UpdatePurchaseCommand struct {
	Identity   authorization.Identity
	PurchaseID uint
	Update     purchase.Update
}

// UpdatePurchaseUseCase edits the purchase record only; assets already
// materialized from it are never touched.
type UpdatePurchaseUseCase struct {
	purchaseRepo purchase.Repository
	gate         *authorization.Gate
	logger       logger.Interface
}

func NewUpdatePurchaseUseCase(
	purchaseRepo purchase.Repository,
	gate *authorization.Gate,
	logger logger.Interface,
) *UpdatePurchaseUseCase {
	return &UpdatePurchaseUseCase{
		purchaseRepo: purchaseRepo,
		gate:         gate,
		logger:       logger,
	}
}

func (uc *UpdatePurchaseUseCase) Execute(ctx context.Context, cmd UpdatePurchaseCommand) (*dto.PurchaseDTO, error) {
	found, err := uc.purchaseRepo.GetByID(ctx, cmd.PurchaseID)
	if err != nil {
		return nil, err
	}

	baseID := found.BaseID()
	if err := uc.gate.Authorize(cmd.Identity, authorization.ResourcePurchase, authorization.ActionUpdate, &baseID); err != nil {
		return nil, err
	}

	found.ApplyUpdate(cmd.Update)

	if err := uc.purchaseRepo.Update(ctx, found); err != nil {
		uc.logger.Errorw("failed to update purchase", "error", err, "purchase_id", cmd.PurchaseID)
		return nil, err
	}

	uc.logger.Infow("purchase updated", "purchase_id", cmd.PurchaseID)

	return purchaseToDTO(found), nil
}
