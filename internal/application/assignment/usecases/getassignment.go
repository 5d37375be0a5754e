package usecases

import (
	"context"

	"garrison/internal/application/assignment/dto"
	"garrison/internal/domain/asset"
	"garrison/internal/domain/assignment"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/logger"
)

type GetAssignmentQuery struct {
	Identity     authorization.Identity
	AssignmentID uint
}

type GetAssignmentUseCase struct {
	assignmentRepo assignment.Repository
	assetRepo      asset.Repository
	gate           *authorization.Gate
	logger         logger.Interface
}

func NewGetAssignmentUseCase(
	assignmentRepo assignment.Repository,
	assetRepo asset.Repository,
	gate *authorization.Gate,
	logger logger.Interface,
) *GetAssignmentUseCase {
	return &GetAssignmentUseCase{
		assignmentRepo: assignmentRepo,
		assetRepo:      assetRepo,
		gate:           gate,
		logger:         logger,
	}
}

func (uc *GetAssignmentUseCase) Execute(ctx context.Context, query GetAssignmentQuery) (*dto.AssignmentDTO, error) {
	found, err := uc.assignmentRepo.GetByID(ctx, query.AssignmentID)
	if err != nil {
		return nil, err
	}

	// Visibility follows the linked asset's current base.
	unit, err := uc.assetRepo.GetByID(ctx, found.AssetID())
	if err != nil {
		return nil, err
	}
	baseID := unit.BaseID()
	if err := uc.gate.Authorize(query.Identity, authorization.ResourceAssignment, authorization.ActionView, &baseID); err != nil {
		return nil, err
	}

	return assignmentToDTO(found), nil
}
