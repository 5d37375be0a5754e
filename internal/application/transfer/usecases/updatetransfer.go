package usecases

import (
	"context"

	"garrison/internal/application/transfer/dto"
	"garrison/internal/domain/transfer"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/logger"
)

type UpdateTransferCommand struct {
	Identity   authorization.Identity
	TransferID uint
	Update     transfer.Update
}

// UpdateTransferUseCase edits the transfer record itself. It does not replay
// the asset relocation; correcting a mis-entered destination is a paperwork
// fix followed by a new transfer if the unit actually moved.
type UpdateTransferUseCase struct {
	transferRepo transfer.Repository
	gate         *authorization.Gate
	logger       logger.Interface
}

func NewUpdateTransferUseCase(
	transferRepo transfer.Repository,
	gate *authorization.Gate,
	logger logger.Interface,
) *UpdateTransferUseCase {
	return &UpdateTransferUseCase{
		transferRepo: transferRepo,
		gate:         gate,
		logger:       logger,
	}
}

func (uc *UpdateTransferUseCase) Execute(ctx context.Context, cmd UpdateTransferCommand) (*dto.TransferDTO, error) {
	found, err := uc.transferRepo.GetByID(ctx, cmd.TransferID)
	if err != nil {
		return nil, err
	}

	fromBase := found.FromBaseID()
	if err := uc.gate.Authorize(cmd.Identity, authorization.ResourceTransfer, authorization.ActionUpdate, &fromBase); err != nil {
		return nil, err
	}

	if err := found.ApplyUpdate(cmd.Update); err != nil {
		return nil, err
	}

	if err := uc.transferRepo.Update(ctx, found); err != nil {
		uc.logger.Errorw("failed to update transfer", "error", err, "transfer_id", cmd.TransferID)
		return nil, err
	}

	uc.logger.Infow("transfer updated", "transfer_id", cmd.TransferID)

	return transferToDTO(found), nil
}
