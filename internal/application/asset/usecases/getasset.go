package usecases

import (
	"context"

	"garrison/internal/application/asset/dto"
	"garrison/internal/domain/asset"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/logger"
)

type GetAssetQuery struct {
	Identity authorization.Identity
	AssetID  uint
}

type GetAssetUseCase struct {
	assetRepo asset.Repository
	gate      *authorization.Gate
	logger    logger.Interface
}

func NewGetAssetUseCase(
	assetRepo asset.Repository,
	gate *authorization.Gate,
	logger logger.Interface,
) *GetAssetUseCase {
	return &GetAssetUseCase{
		assetRepo: assetRepo,
		gate:      gate,
		logger:    logger,
	}
}

func (uc *GetAssetUseCase) Execute(ctx context.Context, query GetAssetQuery) (*dto.AssetDTO, error) {
	found, err := uc.assetRepo.GetByID(ctx, query.AssetID)
	if err != nil {
		return nil, err
	}

	baseID := found.BaseID()
	if err := uc.gate.Authorize(query.Identity, authorization.ResourceAsset, authorization.ActionView, &baseID); err != nil {
		return nil, err
	}

	return assetToDTO(found), nil
}
