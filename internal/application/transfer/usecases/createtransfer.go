package usecases

import (
	"context"
	"time"

	"garrison/internal/application/transfer/dto"
	"garrison/internal/domain/asset"
	"garrison/internal/domain/transfer"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/errors"
	"garrison/internal/shared/logger"
)

type CreateTransferCommand struct {
	Identity      authorization.Identity
	AssetID       uint
	FromBaseID    uint
	ToBaseID      uint
	Quantity      int
	Date          *time.Time
	Status        string
	TransferredBy string
	Reason        string
}

// CreateTransferUseCase records a relocation and moves the asset to its new
// base. The asset row is locked for the duration of the transaction so two
// concurrent transfers of the same unit cannot both pass the availability
// check.
type CreateTransferUseCase struct {
	transferRepo transfer.Repository
	assetRepo    asset.Repository
	txManager    TransactionManager
	gate         *authorization.Gate
	logger       logger.Interface
}

func NewCreateTransferUseCase(
	transferRepo transfer.Repository,
	assetRepo asset.Repository,
	txManager TransactionManager,
	gate *authorization.Gate,
	logger logger.Interface,
) *CreateTransferUseCase {
	return &CreateTransferUseCase{
		transferRepo: transferRepo,
		assetRepo:    assetRepo,
		txManager:    txManager,
		gate:         gate,
		logger:       logger,
	}
}

func (uc *CreateTransferUseCase) Execute(ctx context.Context, cmd CreateTransferCommand) (*dto.TransferDTO, error) {
	if err := uc.gate.Authorize(cmd.Identity, authorization.ResourceTransfer, authorization.ActionCreate, &cmd.FromBaseID); err != nil {
		return nil, err
	}

	if cmd.FromBaseID == cmd.ToBaseID {
		return nil, errors.NewInvalidTransferError("Cannot transfer to same base")
	}

	date := time.Now().UTC()
	if cmd.Date != nil {
		date = *cmd.Date
	}
	quantity := cmd.Quantity
	if quantity < 1 {
		quantity = 1
	}
	status := cmd.Status
	if status == "" {
		status = "In Progress"
	}

	newTransfer, err := transfer.NewTransfer(cmd.AssetID, cmd.FromBaseID, cmd.ToBaseID, quantity, date, status, cmd.TransferredBy, cmd.Reason)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		unit, err := uc.assetRepo.GetByIDForUpdate(txCtx, cmd.AssetID)
		if err != nil {
			return err
		}
		if err := unit.RelocateTo(cmd.ToBaseID); err != nil {
			return err
		}
		if err := uc.transferRepo.Create(txCtx, newTransfer); err != nil {
			return err
		}
		return uc.assetRepo.Update(txCtx, unit)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("transfer created",
		"transfer_id", newTransfer.ID(),
		"asset_id", cmd.AssetID,
		"from_base_id", cmd.FromBaseID,
		"to_base_id", cmd.ToBaseID,
	)

	return transferToDTO(newTransfer), nil
}

func transferToDTO(t *transfer.Transfer) *dto.TransferDTO {
	return &dto.TransferDTO{
		ID:            t.ID(),
		AssetID:       t.AssetID(),
		FromBaseID:    t.FromBaseID(),
		ToBaseID:      t.ToBaseID(),
		Quantity:      t.Quantity(),
		Date:          t.Date(),
		Status:        t.Status(),
		TransferredBy: t.TransferredBy(),
		Reason:        t.Reason(),
	}
}
