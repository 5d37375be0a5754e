package usecases

import (
	"context"
	"strings"

	"garrison/internal/application/asset/dto"
	"garrison/internal/domain/asset"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/errors"
	"garrison/internal/shared/logger"
)

type CreateAssetCommand struct {
	Identity     authorization.Identity
	Name         string
	Type         string
	Description  string
	SerialNumber string
	BaseID       *uint
	Status       string
	Value        *int
}

type CreateAssetUseCase struct {
	assetRepo asset.Repository
	gate      *authorization.Gate
	logger    logger.Interface
}

func NewCreateAssetUseCase(
	assetRepo asset.Repository,
	gate *authorization.Gate,
	logger logger.Interface,
) *CreateAssetUseCase {
	return &CreateAssetUseCase{
		assetRepo: assetRepo,
		gate:      gate,
		logger:    logger,
	}
}

func (uc *CreateAssetUseCase) Execute(ctx context.Context, cmd CreateAssetCommand) (*dto.AssetDTO, error) {
	// Asset records are master data; only admins may create them.
	baseID := cmd.BaseID
	if baseID == nil {
		baseID = cmd.Identity.BaseID
	}
	if err := uc.gate.Authorize(cmd.Identity, authorization.ResourceAsset, authorization.ActionCreate, baseID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cmd.Type) == "" {
		return nil, errors.NewValidationError("type is required")
	}
	if baseID == nil {
		return nil, errors.NewValidationError("base_id is required")
	}

	newAsset, err := asset.NewAsset(
		cmd.Name,
		cmd.Type,
		cmd.Description,
		cmd.SerialNumber,
		*baseID,
		asset.Status(cmd.Status),
		cmd.Value,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.assetRepo.Create(ctx, newAsset); err != nil {
		uc.logger.Errorw("failed to create asset", "error", err, "serial_number", cmd.SerialNumber)
		return nil, err
	}

	uc.logger.Infow("asset created", "asset_id", newAsset.ID(), "type", newAsset.Type(), "base_id", newAsset.BaseID())

	return assetToDTO(newAsset), nil
}

func assetToDTO(a *asset.Asset) *dto.AssetDTO {
	return &dto.AssetDTO{
		ID:           a.ID(),
		Name:         a.Name(),
		Type:         a.Type(),
		Description:  a.Description(),
		SerialNumber: a.SerialNumber(),
		BaseID:       a.BaseID(),
		Status:       a.Status().String(),
		Value:        a.Value(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
}
