package usecases

import (
	"context"

	"garrison/internal/domain/assignment"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/errors"
	"garrison/internal/shared/logger"
)

type DeleteAssignmentCommand struct {
	Identity     authorization.Identity
	AssignmentID uint
}

// DeleteAssignmentUseCase removes the issue record. The asset's current
// status is left alone; deletion is an accounting correction.
type DeleteAssignmentUseCase struct {
	assignmentRepo assignment.Repository
	logger         logger.Interface
}

func NewDeleteAssignmentUseCase(assignmentRepo assignment.Repository, logger logger.Interface) *DeleteAssignmentUseCase {
	return &DeleteAssignmentUseCase{assignmentRepo: assignmentRepo, logger: logger}
}

func (uc *DeleteAssignmentUseCase) Execute(ctx context.Context, cmd DeleteAssignmentCommand) error {
	if !cmd.Identity.Role.IsAdmin() {
		return errors.NewForbiddenError("Only admin can delete assignments")
	}

	if _, err := uc.assignmentRepo.GetByID(ctx, cmd.AssignmentID); err != nil {
		return err
	}

	if err := uc.assignmentRepo.Delete(ctx, cmd.AssignmentID); err != nil {
		uc.logger.Errorw("failed to delete assignment", "error", err, "assignment_id", cmd.AssignmentID)
		return err
	}

	uc.logger.Infow("assignment deleted", "assignment_id", cmd.AssignmentID)
	return nil
}
