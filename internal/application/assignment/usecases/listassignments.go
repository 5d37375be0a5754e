package usecases

import (
	"context"
	"time"

	"garrison/internal/application/assignment/dto"
	"garrison/internal/domain/assignment"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/logger"
	"garrison/internal/shared/utils"
)

type ListAssignmentsQuery struct {
	Identity    authorization.Identity
	AssetID     *uint
	PersonnelID *uint
	Status      string
	BaseID      *uint
	StartDate   *time.Time
	EndDate     *time.Time
	Page        int
	Limit       int
}

type ListAssignmentsResult struct {
	Assignments []*dto.AssignmentDTO
	Total       int64
	Page        int
	TotalPages  int
}

type ListAssignmentsUseCase struct {
	assignmentRepo assignment.Repository
	logger         logger.Interface
}

func NewListAssignmentsUseCase(assignmentRepo assignment.Repository, logger logger.Interface) *ListAssignmentsUseCase {
	return &ListAssignmentsUseCase{assignmentRepo: assignmentRepo, logger: logger}
}

func (uc *ListAssignmentsUseCase) Execute(ctx context.Context, query ListAssignmentsQuery) (*ListAssignmentsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.Limit)

	filter := assignment.Filter{
		AssetID:     query.AssetID,
		PersonnelID: query.PersonnelID,
		Status:      assignment.StatusFilter(query.Status),
		BaseID:      query.BaseID,
		StartDate:   query.StartDate,
		EndDate:     query.EndDate,
		Page:        pagination.Page,
		Limit:       pagination.Limit,
	}
	// Base scoping works through the linked asset's current base.
	if !query.Identity.Role.IsAdmin() {
		filter.BaseID = query.Identity.BaseID
	}

	assignments, total, err := uc.assignmentRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list assignments", "error", err)
		return nil, err
	}

	items := make([]*dto.AssignmentDTO, 0, len(assignments))
	for _, a := range assignments {
		items = append(items, assignmentToDTO(a))
	}

	return &ListAssignmentsResult{
		Assignments: items,
		Total:       total,
		Page:        pagination.Page,
		TotalPages:  utils.TotalPages(total, pagination.Limit),
	}, nil
}
