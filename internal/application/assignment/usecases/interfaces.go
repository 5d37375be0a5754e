package usecases

import (
	"context"

	"garrison/internal/application/assignment/dto"
)

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type AssignAssetExecutor interface {
	Execute(ctx context.Context, cmd AssignAssetCommand) (*dto.AssignmentDTO, error)
}

type ExpendAssetExecutor interface {
	Execute(ctx context.Context, cmd ExpendAssetCommand) (*dto.AssignmentDTO, error)
}

type GetAssignmentExecutor interface {
	Execute(ctx context.Context, query GetAssignmentQuery) (*dto.AssignmentDTO, error)
}

type UpdateAssignmentExecutor interface {
	Execute(ctx context.Context, cmd UpdateAssignmentCommand) (*dto.AssignmentDTO, error)
}

type DeleteAssignmentExecutor interface {
	Execute(ctx context.Context, cmd DeleteAssignmentCommand) error
}

type ListAssignmentsExecutor interface {
	Execute(ctx context.Context, query ListAssignmentsQuery) (*ListAssignmentsResult, error)
}

type AssetAssignmentsExecutor interface {
	Execute(ctx context.Context, query AssetAssignmentsQuery) ([]*dto.AssignmentDTO, error)
}

type PersonnelAssignmentsExecutor interface {
	Execute(ctx context.Context, query PersonnelAssignmentsQuery) ([]*dto.AssignmentDTO, error)
}
