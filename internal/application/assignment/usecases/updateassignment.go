package usecases

import (
	"context"

	"garrison/internal/application/assignment/dto"
	"garrison/internal/domain/asset"
	"garrison/internal/domain/assignment"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/errors"
	"garrison/internal/shared/logger"
)

type UpdateAssignmentCommand struct {
	Identity     authorization.Identity
	AssignmentID uint
	Update       assignment.Update
}

// UpdateAssignmentUseCase is an admin correction of the issue record. It does
// not replay the asset status transitions.
type UpdateAssignmentUseCase struct {
	assignmentRepo assignment.Repository
	assetRepo      asset.Repository
	gate           *authorization.Gate
	logger         logger.Interface
}

func NewUpdateAssignmentUseCase(
	assignmentRepo assignment.Repository,
	assetRepo asset.Repository,
	gate *authorization.Gate,
	logger logger.Interface,
) *UpdateAssignmentUseCase {
	return &UpdateAssignmentUseCase{
		assignmentRepo: assignmentRepo,
		assetRepo:      assetRepo,
		gate:           gate,
		logger:         logger,
	}
}

func (uc *UpdateAssignmentUseCase) Execute(ctx context.Context, cmd UpdateAssignmentCommand) (*dto.AssignmentDTO, error) {
	found, err := uc.assignmentRepo.GetByID(ctx, cmd.AssignmentID)
	if err != nil {
		return nil, err
	}

	unit, err := uc.assetRepo.GetByID(ctx, found.AssetID())
	if err != nil {
		return nil, err
	}
	baseID := unit.BaseID()
	if err := uc.gate.Authorize(cmd.Identity, authorization.ResourceAssignment, authorization.ActionView, &baseID); err != nil {
		return nil, err
	}
	if !cmd.Identity.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("Only admin can update assignments")
	}

	found.ApplyUpdate(cmd.Update)

	if err := uc.assignmentRepo.Update(ctx, found); err != nil {
		uc.logger.Errorw("failed to update assignment", "error", err, "assignment_id", cmd.AssignmentID)
		return nil, err
	}

	uc.logger.Infow("assignment updated", "assignment_id", cmd.AssignmentID)

	return assignmentToDTO(found), nil
}
