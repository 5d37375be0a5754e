package usecases

import (
	"context"

	"garrison/internal/application/transfer/dto"
)

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateTransferExecutor interface {
	Execute(ctx context.Context, cmd CreateTransferCommand) (*dto.TransferDTO, error)
}

type GetTransferExecutor interface {
	Execute(ctx context.Context, query GetTransferQuery) (*dto.TransferDTO, error)
}

type UpdateTransferExecutor interface {
	Execute(ctx context.Context, cmd UpdateTransferCommand) (*dto.TransferDTO, error)
}

type DeleteTransferExecutor interface {
	Execute(ctx context.Context, cmd DeleteTransferCommand) error
}

type ListTransfersExecutor interface {
	Execute(ctx context.Context, query ListTransfersQuery) (*ListTransfersResult, error)
}

type AssetTransferHistoryExecutor interface {
	Execute(ctx context.Context, query AssetTransferHistoryQuery) ([]*dto.TransferDTO, error)
}
