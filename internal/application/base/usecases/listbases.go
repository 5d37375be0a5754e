package usecases

import (
	"context"

	"garrison/internal/domain/base"
	"garrison/internal/shared/logger"
)

// BaseDTO is the public base representation.
type BaseDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type ListBasesExecutor interface {
	Execute(ctx context.Context) ([]*BaseDTO, error)
}

// ListBasesUseCase returns every base. Any authenticated user may call it;
// the list feeds dropdowns across the UI.
type ListBasesUseCase struct {
	baseRepo base.Repository
	logger   logger.Interface
}

func NewListBasesUseCase(baseRepo base.Repository, logger logger.Interface) *ListBasesUseCase {
	return &ListBasesUseCase{baseRepo: baseRepo, logger: logger}
}

func (uc *ListBasesUseCase) Execute(ctx context.Context) ([]*BaseDTO, error) {
	bases, err := uc.baseRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list bases", "error", err)
		return nil, err
	}

	items := make([]*BaseDTO, 0, len(bases))
	for _, b := range bases {
		items = append(items, &BaseDTO{ID: b.ID(), Name: b.Name(), Location: b.Location()})
	}
	return items, nil
}
