package usecases

import (
	"context"
	"time"

	"garrison/internal/application/purchase/dto"
	"garrison/internal/domain/purchase"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/logger"
	"garrison/internal/shared/utils"
)

type ListPurchasesQuery struct {
	Identity  authorization.Identity
	AssetType string
	BaseID    *uint
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

type ListPurchasesResult struct {
	Purchases  []*dto.PurchaseDTO
	Total      int64
	Page       int
	TotalPages int
}

type ListPurchasesUseCase struct {
	purchaseRepo purchase.Repository
	logger       logger.Interface
}

func NewListPurchasesUseCase(purchaseRepo purchase.Repository, logger logger.Interface) *ListPurchasesUseCase {
	return &ListPurchasesUseCase{purchaseRepo: purchaseRepo, logger: logger}
}

func (uc *ListPurchasesUseCase) Execute(ctx context.Context, query ListPurchasesQuery) (*ListPurchasesResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.Limit)

	filter := purchase.Filter{
		AssetType: query.AssetType,
		BaseID:    query.BaseID,
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
		Page:      pagination.Page,
		Limit:     pagination.Limit,
	}
	// The base_id query parameter is an admin convenience; everyone else is
	// pinned to their own base.
	if !query.Identity.Role.IsAdmin() {
		filter.BaseID = query.Identity.BaseID
	}

	purchases, total, err := uc.purchaseRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list purchases", "error", err)
		return nil, err
	}

	items := make([]*dto.PurchaseDTO, 0, len(purchases))
	for _, p := range purchases {
		items = append(items, purchaseToDTO(p))
	}

	return &ListPurchasesResult{
		Purchases:  items,
		Total:      total,
		Page:       pagination.Page,
		TotalPages: utils.TotalPages(total, pagination.Limit),
	}, nil
}
