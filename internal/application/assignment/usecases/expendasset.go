package usecases

import (
	"context"
	"time"

	"garrison/internal/application/assignment/dto"
	"garrison/internal/domain/asset"
	"garrison/internal/domain/assignment"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/logger"
)

type ExpendAssetCommand struct {
	Identity     authorization.Identity
	AssignmentID uint
	ExpendedDate *time.Time
}

// ExpendAssetUseCase closes an assignment. The asset returns to the available
// pool; "expended" describes the issue record, not the unit.
type ExpendAssetUseCase struct {
	assignmentRepo assignment.Repository
	assetRepo      asset.Repository
	txManager      TransactionManager
	gate           *authorization.Gate
	logger         logger.Interface
}

func NewExpendAssetUseCase(
	assignmentRepo assignment.Repository,
	assetRepo asset.Repository,
	txManager TransactionManager,
	gate *authorization.Gate,
	logger logger.Interface,
) *ExpendAssetUseCase {
	return &ExpendAssetUseCase{
		assignmentRepo: assignmentRepo,
		assetRepo:      assetRepo,
		txManager:      txManager,
		gate:           gate,
		logger:         logger,
	}
}

func (uc *ExpendAssetUseCase) Execute(ctx context.Context, cmd ExpendAssetCommand) (*dto.AssignmentDTO, error) {
	expendedDate := time.Now().UTC()
	if cmd.ExpendedDate != nil {
		expendedDate = *cmd.ExpendedDate
	}

	var closed *assignment.Assignment
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		found, err := uc.assignmentRepo.GetByID(txCtx, cmd.AssignmentID)
		if err != nil {
			return err
		}

		unit, err := uc.assetRepo.GetByIDForUpdate(txCtx, found.AssetID())
		if err != nil {
			return err
		}

		baseID := unit.BaseID()
		if err := uc.gate.Authorize(cmd.Identity, authorization.ResourceAssignment, authorization.ActionExpend, &baseID); err != nil {
			return err
		}

		if err := found.Expend(expendedDate); err != nil {
			return err
		}
		if err := uc.assignmentRepo.Update(txCtx, found); err != nil {
			return err
		}

		unit.Release()
		if err := uc.assetRepo.Update(txCtx, unit); err != nil {
			return err
		}

		closed = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("assignment expended",
		"assignment_id", closed.ID(),
		"asset_id", closed.AssetID(),
	)

	return assignmentToDTO(closed), nil
}
