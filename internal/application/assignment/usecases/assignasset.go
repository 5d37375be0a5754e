package usecases

import (
	"context"
	"time"

	"garrison/internal/application/assignment/dto"
	"garrison/internal/domain/asset"
	"garrison/internal/domain/assignment"
	"garrison/internal/domain/user"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/errors"
	"garrison/internal/shared/logger"
)

type AssignAssetCommand struct {
	Identity    authorization.Identity
	AssetID     uint
	PersonnelID uint
	AssignedAt  *time.Time
	AssignedBy  string
}

// AssignAssetUseCase hands an asset to a member of personnel. The asset row
// is locked while the availability and double-assignment checks run, so two
// concurrent assignments of the same unit cannot both succeed.
type AssignAssetUseCase struct {
	assignmentRepo assignment.Repository
	assetRepo      asset.Repository
	userRepo       user.Repository
	txManager      TransactionManager
	gate           *authorization.Gate
	logger         logger.Interface
}

func NewAssignAssetUseCase(
	assignmentRepo assignment.Repository,
	assetRepo asset.Repository,
	userRepo user.Repository,
	txManager TransactionManager,
	gate *authorization.Gate,
	logger logger.Interface,
) *AssignAssetUseCase {
	return &AssignAssetUseCase{
		assignmentRepo: assignmentRepo,
		assetRepo:      assetRepo,
		userRepo:       userRepo,
		txManager:      txManager,
		gate:           gate,
		logger:         logger,
	}
}

func (uc *AssignAssetUseCase) Execute(ctx context.Context, cmd AssignAssetCommand) (*dto.AssignmentDTO, error) {
	assignedAt := time.Now().UTC()
	if cmd.AssignedAt != nil {
		assignedAt = *cmd.AssignedAt
	}

	var created *assignment.Assignment
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		unit, err := uc.assetRepo.GetByIDForUpdate(txCtx, cmd.AssetID)
		if err != nil {
			return err
		}
		if unit.Status() != asset.StatusAvailable {
			return errors.NewAssetNotAvailableError("Asset is not available for assignment")
		}

		baseID := unit.BaseID()
		if err := uc.gate.Authorize(cmd.Identity, authorization.ResourceAssignment, authorization.ActionCreate, &baseID); err != nil {
			return err
		}

		if _, err := uc.userRepo.GetByID(txCtx, cmd.PersonnelID); err != nil {
			if appErr := errors.GetAppError(err); appErr != nil && appErr.Type == errors.ErrorTypeNotFound {
				return errors.NewNotFoundError("Personnel not found")
			}
			return err
		}

		existing, err := uc.assignmentRepo.GetActiveByAssetID(txCtx, cmd.AssetID)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.NewAlreadyAssignedError()
		}

		created, err = assignment.NewAssignment(cmd.AssetID, cmd.PersonnelID, assignedAt, cmd.AssignedBy)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.assignmentRepo.Create(txCtx, created); err != nil {
			return err
		}

		if err := unit.Assign(); err != nil {
			return err
		}
		return uc.assetRepo.Update(txCtx, unit)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("asset assigned",
		"assignment_id", created.ID(),
		"asset_id", cmd.AssetID,
		"personnel_id", cmd.PersonnelID,
	)

	return assignmentToDTO(created), nil
}

func assignmentToDTO(a *assignment.Assignment) *dto.AssignmentDTO {
	return &dto.AssignmentDTO{
		ID:           a.ID(),
		AssetID:      a.AssetID(),
		PersonnelID:  a.PersonnelID(),
		AssignedAt:   a.AssignedAt(),
		ExpendedDate: a.ExpendedDate(),
		AssignedBy:   a.AssignedBy(),
	}
}
