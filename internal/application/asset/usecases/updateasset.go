package usecases

import (
	"context"

	"garrison/internal/application/asset/dto"
	"garrison/internal/domain/asset"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/logger"
)

type UpdateAssetCommand struct {
	Identity authorization.Identity
	AssetID  uint
	Update   asset.Update
}

type UpdateAssetUseCase struct {
	assetRepo asset.Repository
	gate      *authorization.Gate
	logger    logger.Interface
}

func NewUpdateAssetUseCase(
	assetRepo asset.Repository,
	gate *authorization.Gate,
	logger logger.Interface,
) *UpdateAssetUseCase {
	return &UpdateAssetUseCase{
		assetRepo: assetRepo,
		gate:      gate,
		logger:    logger,
	}
}

func (uc *UpdateAssetUseCase) Execute(ctx context.Context, cmd UpdateAssetCommand) (*dto.AssetDTO, error) {
	found, err := uc.assetRepo.GetByID(ctx, cmd.AssetID)
	if err != nil {
		return nil, err
	}

	baseID := found.BaseID()
	if err := uc.gate.Authorize(cmd.Identity, authorization.ResourceAsset, authorization.ActionUpdate, &baseID); err != nil {
		return nil, err
	}

	if err := found.ApplyUpdate(cmd.Update); err != nil {
		return nil, err
	}

	if err := uc.assetRepo.Update(ctx, found); err != nil {
		uc.logger.Errorw("failed to update asset", "error", err, "asset_id", cmd.AssetID)
		return nil, err
	}

	uc.logger.Infow("asset updated", "asset_id", cmd.AssetID)

	return assetToDTO(found), nil
}
