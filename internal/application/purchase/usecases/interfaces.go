package usecases

import (
	"context"

	"garrison/internal/application/purchase/dto"
)

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreatePurchaseExecutor interface {
	Execute(ctx context.Context, cmd CreatePurchaseCommand) (*CreatePurchaseResult, error)
}

type GetPurchaseExecutor interface {
	Execute(ctx context.Context, query GetPurchaseQuery) (*dto.PurchaseDTO, error)
}

type UpdatePurchaseExecutor interface {
	Execute(ctx context.Context, cmd UpdatePurchaseCommand) (*dto.PurchaseDTO, error)
}

type DeletePurchaseExecutor interface {
	Execute(ctx context.Context, cmd DeletePurchaseCommand) error
}

type ListPurchasesExecutor interface {
	Execute(ctx context.Context, query ListPurchasesQuery) (*ListPurchasesResult, error)
}
