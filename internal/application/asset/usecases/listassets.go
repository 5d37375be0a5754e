package usecases

import (
	"context"

	"garrison/internal/application/asset/dto"
	"garrison/internal/domain/asset"
	"garrison/internal/domain/assignment"
	"garrison/internal/domain/user"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/logger"
	"garrison/internal/shared/utils"
)

type ListAssetsQuery struct {
	Identity authorization.Identity
	Type     string
	Status   string
	BaseID   *uint
	Search   string
	Page     int
	Limit    int
}

type ListAssetsResult struct {
	Assets     []*dto.AssetDTO
	Total      int64
	Page       int
	TotalPages int
}

type ListAssetsUseCase struct {
	assetRepo      asset.Repository
	assignmentRepo assignment.Repository
	userRepo       user.Repository
	logger         logger.Interface
}

func NewListAssetsUseCase(
	assetRepo asset.Repository,
	assignmentRepo assignment.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListAssetsUseCase {
	return &ListAssetsUseCase{
		assetRepo:      assetRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (uc *ListAssetsUseCase) Execute(ctx context.Context, query ListAssetsQuery) (*ListAssetsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.Limit)

	filter := asset.Filter{
		Type:   query.Type,
		Status: query.Status,
		BaseID: query.BaseID,
		Search: query.Search,
		Page:   pagination.Page,
		Limit:  pagination.Limit,
	}
	// Non-admins only ever see their own base's inventory.
	if !query.Identity.Role.IsAdmin() {
		filter.BaseID = query.Identity.BaseID
	}

	assets, total, err := uc.assetRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list assets", "error", err)
		return nil, err
	}

	items := make([]*dto.AssetDTO, 0, len(assets))
	for _, a := range assets {
		item := assetToDTO(a)
		item.Status = asset.StatusAvailable.String()
		item.AssignedTo = "-"

		active, err := uc.assignmentRepo.GetActiveByAssetID(ctx, a.ID())
		if err != nil {
			return nil, err
		}
		if active != nil {
			item.Status = asset.StatusAssigned.String()
			if holder, err := uc.userRepo.GetByID(ctx, active.PersonnelID()); err == nil && holder != nil {
				item.AssignedTo = holder.Name()
			}
		}

		items = append(items, item)
	}

	return &ListAssetsResult{
		Assets:     items,
		Total:      total,
		Page:       pagination.Page,
		TotalPages: utils.TotalPages(total, pagination.Limit),
	}, nil
}
