package usecases

import (
	"context"

	"garrison/internal/domain/transfer"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/errors"
	"garrison/internal/shared/logger"
)

type DeleteTransferCommand struct {
	Identity   authorization.Identity
	TransferID uint
}

// DeleteTransferUseCase removes the transfer record without moving the asset
// back; deletion is an accounting correction.
type DeleteTransferUseCase struct {
	transferRepo transfer.Repository
	logger       logger.Interface
}

func NewDeleteTransferUseCase(transferRepo transfer.Repository, logger logger.Interface) *DeleteTransferUseCase {
	return &DeleteTransferUseCase{transferRepo: transferRepo, logger: logger}
}

func (uc *DeleteTransferUseCase) Execute(ctx context.Context, cmd DeleteTransferCommand) error {
	if _, err := uc.transferRepo.GetByID(ctx, cmd.TransferID); err != nil {
		return err
	}

	if !cmd.Identity.Role.IsAdmin() {
		return errors.NewForbiddenError("Only admin can delete transfers")
	}

	if err := uc.transferRepo.Delete(ctx, cmd.TransferID); err != nil {
		uc.logger.Errorw("failed to delete transfer", "error", err, "transfer_id", cmd.TransferID)
		return err
	}

	uc.logger.Infow("transfer deleted", "transfer_id", cmd.TransferID)
	return nil
}
