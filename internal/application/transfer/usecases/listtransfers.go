package usecases

import (
	"context"
	"time"

	"garrison/internal/application/transfer/dto"
	"garrison/internal/domain/transfer"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/logger"
	"garrison/internal/shared/utils"
)

type ListTransfersQuery struct {
	Identity   authorization.Identity
	AssetID    *uint
	FromBaseID *uint
	ToBaseID   *uint
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
}

type ListTransfersResult struct {
	Transfers  []*dto.TransferDTO
	Total      int64
	Page       int
	TotalPages int
}

type ListTransfersUseCase struct {
	transferRepo transfer.Repository
	logger       logger.Interface
}

func NewListTransfersUseCase(transferRepo transfer.Repository, logger logger.Interface) *ListTransfersUseCase {
	return &ListTransfersUseCase{transferRepo: transferRepo, logger: logger}
}

func (uc *ListTransfersUseCase) Execute(ctx context.Context, query ListTransfersQuery) (*ListTransfersResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.Limit)

	filter := transfer.Filter{
		AssetID:    query.AssetID,
		FromBaseID: query.FromBaseID,
		ToBaseID:   query.ToBaseID,
		StartDate:  query.StartDate,
		EndDate:    query.EndDate,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
	}
	// Non-admins see transfers touching their base as origin or destination.
	if !query.Identity.Role.IsAdmin() {
		filter.TouchingBaseID = query.Identity.BaseID
	}

	transfers, total, err := uc.transferRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list transfers", "error", err)
		return nil, err
	}

	items := make([]*dto.TransferDTO, 0, len(transfers))
	for _, t := range transfers {
		items = append(items, transferToDTO(t))
	}

	return &ListTransfersResult{
		Transfers:  items,
		Total:      total,
		Page:       pagination.Page,
		TotalPages: utils.TotalPages(total, pagination.Limit),
	}, nil
}
