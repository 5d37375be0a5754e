package usecases

import (
	"context"

	"garrison/internal/application/purchase/dto"
	"garrison/internal/domain/purchase"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/logger"
)

type GetPurchaseQuery struct {
	Identity   authorization.Identity
	PurchaseID uint
}

type GetPurchaseUseCase struct {
	purchaseRepo purchase.Repository
	gate         *authorization.Gate
	logger       logger.Interface
}

func NewGetPurchaseUseCase(
	purchaseRepo purchase.Repository,
	gate *authorization.Gate,
	logger logger.Interface,
) *GetPurchaseUseCase {
	return &GetPurchaseUseCase{
		purchaseRepo: purchaseRepo,
		gate:         gate,
		logger:       logger,
	}
}

func (uc *GetPurchaseUseCase) Execute(ctx context.Context, query GetPurchaseQuery) (*dto.PurchaseDTO, error) {
	found, err := uc.purchaseRepo.GetByID(ctx, query.PurchaseID)
	if err != nil {
		return nil, err
	}

	baseID := found.BaseID()
	if err := uc.gate.Authorize(query.Identity, authorization.ResourcePurchase, authorization.ActionView, &baseID); err != nil {
		return nil, err
	}

	return purchaseToDTO(found), nil
}
