package usecases

import (
	"context"

	"garrison/internal/application/transfer/dto"
	"garrison/internal/domain/asset"
	"garrison/internal/domain/transfer"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/logger"
)

type AssetTransferHistoryQuery struct {
	Identity authorization.Identity
	AssetID  uint
}

// AssetTransferHistoryUseCase returns every relocation of one asset, newest
// first. Visibility follows the asset's current base.
type AssetTransferHistoryUseCase struct {
	transferRepo transfer.Repository
	assetRepo    asset.Repository
	gate         *authorization.Gate
	logger       logger.Interface
}

func NewAssetTransferHistoryUseCase(
	transferRepo transfer.Repository,
	assetRepo asset.Repository,
	gate *authorization.Gate,
	logger logger.Interface,
) *AssetTransferHistoryUseCase {
	return &AssetTransferHistoryUseCase{
		transferRepo: transferRepo,
		assetRepo:    assetRepo,
		gate:         gate,
		logger:       logger,
	}
}

func (uc *AssetTransferHistoryUseCase) Execute(ctx context.Context, query AssetTransferHistoryQuery) ([]*dto.TransferDTO, error) {
	unit, err := uc.assetRepo.GetByID(ctx, query.AssetID)
	if err != nil {
		return nil, err
	}

	baseID := unit.BaseID()
	if err := uc.gate.Authorize(query.Identity, authorization.ResourceAsset, authorization.ActionView, &baseID); err != nil {
		return nil, err
	}

	transfers, err := uc.transferRepo.ListByAsset(ctx, query.AssetID)
	if err != nil {
		uc.logger.Errorw("failed to load transfer history", "error", err, "asset_id", query.AssetID)
		return nil, err
	}

	items := make([]*dto.TransferDTO, 0, len(transfers))
	for _, t := range transfers {
		items = append(items, transferToDTO(t))
	}
	return items, nil
}
