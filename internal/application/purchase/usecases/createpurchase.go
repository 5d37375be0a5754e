package usecases

import (
	"context"
	"strings"
	"time"

	"garrison/internal/application/purchase/dto"
	"garrison/internal/domain/asset"
	"garrison/internal/domain/purchase"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/errors"
	"garrison/internal/shared/logger"
)

type CreatePurchaseCommand struct {
	Identity    authorization.Identity
	AssetType   string
	Quantity    int
	BaseID      uint
	Date        *time.Time
	Status      string
	ApprovedBy  string
	RequestedBy string
}

type CreatePurchaseResult struct {
	Purchase      *dto.PurchaseDTO
	AssetsCreated int
}

// CreatePurchaseUseCase records an acquisition and materializes each unit as
// an individual asset row, all inside one transaction so a failed serial
// insert never leaves a half-recorded purchase.
type CreatePurchaseUseCase struct {
	purchaseRepo purchase.Repository
	assetRepo    asset.Repository
	txManager    TransactionManager
	gate         *authorization.Gate
	logger       logger.Interface
}

func NewCreatePurchaseUseCase(
	purchaseRepo purchase.Repository,
	assetRepo asset.Repository,
	txManager TransactionManager,
	gate *authorization.Gate,
	logger logger.Interface,
) *CreatePurchaseUseCase {
	return &CreatePurchaseUseCase{
		purchaseRepo: purchaseRepo,
		assetRepo:    assetRepo,
		txManager:    txManager,
		gate:         gate,
		logger:       logger,
	}
}

func (uc *CreatePurchaseUseCase) Execute(ctx context.Context, cmd CreatePurchaseCommand) (*CreatePurchaseResult, error) {
	if err := uc.gate.Authorize(cmd.Identity, authorization.ResourcePurchase, authorization.ActionCreate, &cmd.BaseID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cmd.AssetType) == "" {
		return nil, errors.NewValidationError("asset_type is required")
	}
	if cmd.Quantity < 1 {
		return nil, errors.NewValidationError("quantity must be at least 1")
	}

	date := time.Now().UTC()
	if cmd.Date != nil {
		date = *cmd.Date
	}

	newPurchase, err := purchase.NewPurchase(cmd.AssetType, cmd.Quantity, cmd.BaseID, date, cmd.Status, cmd.ApprovedBy, cmd.RequestedBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var created int
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.purchaseRepo.Create(txCtx, newPurchase); err != nil {
			return err
		}

		// One batch timestamp keeps the serial numbers of a purchase
		// visibly grouped.
		batchTime := time.Now().UTC()
		for i := 0; i < newPurchase.Quantity(); i++ {
			unit, err := asset.NewPurchasedAsset(newPurchase.AssetType(), newPurchase.ID(), newPurchase.BaseID(), i, batchTime)
			if err != nil {
				return err
			}
			if err := uc.assetRepo.Create(txCtx, unit); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create purchase", "error", err, "asset_type", cmd.AssetType, "base_id", cmd.BaseID)
		return nil, err
	}

	uc.logger.Infow("purchase created",
		"purchase_id", newPurchase.ID(),
		"asset_type", newPurchase.AssetType(),
		"quantity", newPurchase.Quantity(),
		"base_id", newPurchase.BaseID(),
	)

	return &CreatePurchaseResult{
		Purchase:      purchaseToDTO(newPurchase),
		AssetsCreated: created,
	}, nil
}

func purchaseToDTO(p *purchase.Purchase) *dto.PurchaseDTO {
	return &dto.PurchaseDTO{
		ID:          p.ID(),
		AssetType:   p.AssetType(),
		Quantity:    p.Quantity(),
		BaseID:      p.BaseID(),
		Date:        p.Date(),
		Status:      p.Status(),
		ApprovedBy:  p.ApprovedBy(),
		RequestedBy: p.RequestedBy(),
	}
}
