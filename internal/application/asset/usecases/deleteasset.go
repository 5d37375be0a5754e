package usecases

import (
	"context"

	"garrison/internal/domain/asset"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/logger"
)

type DeleteAssetCommand struct {
	Identity authorization.Identity
	AssetID  uint
}

type DeleteAssetUseCase struct {
	assetRepo asset.Repository
	gate      *authorization.Gate
	logger    logger.Interface
}

func NewDeleteAssetUseCase(
	assetRepo asset.Repository,
	gate *authorization.Gate,
	logger logger.Interface,
) *DeleteAssetUseCase {
	return &DeleteAssetUseCase{
		assetRepo: assetRepo,
		gate:      gate,
		logger:    logger,
	}
}

func (uc *DeleteAssetUseCase) Execute(ctx context.Context, cmd DeleteAssetCommand) error {
	found, err := uc.assetRepo.GetByID(ctx, cmd.AssetID)
	if err != nil {
		return err
	}

	baseID := found.BaseID()
	if err := uc.gate.Authorize(cmd.Identity, authorization.ResourceAsset, authorization.ActionDelete, &baseID); err != nil {
		return err
	}

	if err := uc.assetRepo.Delete(ctx, cmd.AssetID); err != nil {
		uc.logger.Errorw("failed to delete asset", "error", err, "asset_id", cmd.AssetID)
		return err
	}

	uc.logger.Infow("asset deleted", "asset_id", cmd.AssetID)
	return nil
}
