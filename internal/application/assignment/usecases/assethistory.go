package usecases

import (
	"context"

	"garrison/internal/application/assignment/dto"
	"garrison/internal/domain/asset"
	"garrison/internal/domain/assignment"
	"garrison/internal/domain/user"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/errors"
	"garrison/internal/shared/logger"
)

type AssetAssignmentsQuery struct {
	Identity authorization.Identity
	AssetID  uint
}

// AssetAssignmentsUseCase returns the full issue history of one asset,
// newest first.
type AssetAssignmentsUseCase struct {
	assignmentRepo assignment.Repository
	assetRepo      asset.Repository
	gate           *authorization.Gate
	logger         logger.Interface
}

func NewAssetAssignmentsUseCase(
	assignmentRepo assignment.Repository,
	assetRepo asset.Repository,
	gate *authorization.Gate,
	logger logger.Interface,
) *AssetAssignmentsUseCase {
	return &AssetAssignmentsUseCase{
		assignmentRepo: assignmentRepo,
		assetRepo:      assetRepo,
		gate:           gate,
		logger:         logger,
	}
}

func (uc *AssetAssignmentsUseCase) Execute(ctx context.Context, query AssetAssignmentsQuery) ([]*dto.AssignmentDTO, error) {
	unit, err := uc.assetRepo.GetByID(ctx, query.AssetID)
	if err != nil {
		return nil, err
	}

	baseID := unit.BaseID()
	if err := uc.gate.Authorize(query.Identity, authorization.ResourceAssignment, authorization.ActionView, &baseID); err != nil {
		return nil, err
	}

	assignments, err := uc.assignmentRepo.ListByAsset(ctx, query.AssetID)
	if err != nil {
		uc.logger.Errorw("failed to load asset assignments", "error", err, "asset_id", query.AssetID)
		return nil, err
	}

	return assignmentsToDTOs(assignments), nil
}

type PersonnelAssignmentsQuery struct {
	Identity    authorization.Identity
	PersonnelID uint
}

// PersonnelAssignmentsUseCase returns everything ever issued to one member
// of personnel, newest first.
type PersonnelAssignmentsUseCase struct {
	assignmentRepo assignment.Repository
	userRepo       user.Repository
	gate           *authorization.Gate
	logger         logger.Interface
}

func NewPersonnelAssignmentsUseCase(
	assignmentRepo assignment.Repository,
	userRepo user.Repository,
	gate *authorization.Gate,
	logger logger.Interface,
) *PersonnelAssignmentsUseCase {
	return &PersonnelAssignmentsUseCase{
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		gate:           gate,
		logger:         logger,
	}
}

func (uc *PersonnelAssignmentsUseCase) Execute(ctx context.Context, query PersonnelAssignmentsQuery) ([]*dto.AssignmentDTO, error) {
	personnel, err := uc.userRepo.GetByID(ctx, query.PersonnelID)
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil && appErr.Type == errors.ErrorTypeNotFound {
			return nil, errors.NewNotFoundError("Personnel not found")
		}
		return nil, err
	}

	if err := uc.gate.Authorize(query.Identity, authorization.ResourceAssignment, authorization.ActionView, personnel.BaseID()); err != nil {
		return nil, err
	}

	assignments, err := uc.assignmentRepo.ListByPersonnel(ctx, query.PersonnelID)
	if err != nil {
		uc.logger.Errorw("failed to load personnel assignments", "error", err, "personnel_id", query.PersonnelID)
		return nil, err
	}

	return assignmentsToDTOs(assignments), nil
}

func assignmentsToDTOs(assignments []*assignment.Assignment) []*dto.AssignmentDTO {
	items := make([]*dto.AssignmentDTO, 0, len(assignments))
	for _, a := range assignments {
		items = append(items, assignmentToDTO(a))
	}
	return items
}
