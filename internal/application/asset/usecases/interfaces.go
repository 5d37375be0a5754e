package usecases

import (
	"context"

	"garrison/internal/application/asset/dto"
)

type CreateAssetExecutor interface {
	Execute(ctx context.Context, cmd CreateAssetCommand) (*dto.AssetDTO, error)
}

type GetAssetExecutor interface {
	Execute(ctx context.Context, query GetAssetQuery) (*dto.AssetDTO, error)
}

type UpdateAssetExecutor interface {
	Execute(ctx context.Context, cmd UpdateAssetCommand) (*dto.AssetDTO, error)
}

type DeleteAssetExecutor interface {
	Execute(ctx context.Context, cmd DeleteAssetCommand) error
}

type ListAssetsExecutor interface {
	Execute(ctx context.Context, query ListAssetsQuery) (*ListAssetsResult, error)
}
