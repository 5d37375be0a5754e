package usecases

import (
	"context"

	"garrison/internal/application/transfer/dto"
	"garrison/internal/domain/transfer"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/constants"
	"garrison/internal/shared/errors"
	"garrison/internal/shared/logger"
)

type GetTransferQuery struct {
	Identity   authorization.Identity
	TransferID uint
}

type GetTransferUseCase struct {
	transferRepo transfer.Repository
	logger       logger.Interface
}

func NewGetTransferUseCase(transferRepo transfer.Repository, logger logger.Interface) *GetTransferUseCase {
	return &GetTransferUseCase{transferRepo: transferRepo, logger: logger}
}

func (uc *GetTransferUseCase) Execute(ctx context.Context, query GetTransferQuery) (*dto.TransferDTO, error) {
	found, err := uc.transferRepo.GetByID(ctx, query.TransferID)
	if err != nil {
		return nil, err
	}

	// A transfer is visible to anyone whose base it touches.
	if !query.Identity.Role.IsAdmin() {
		from := found.FromBaseID()
		to := found.ToBaseID()
		if !query.Identity.SameBase(&from) && !query.Identity.SameBase(&to) {
			return nil, errors.NewForbiddenError(constants.ErrMsgAccessDenied)
		}
	}

	return transferToDTO(found), nil
}
