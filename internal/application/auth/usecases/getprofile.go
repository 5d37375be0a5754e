package usecases

import (
	"context"

	"garrison/internal/application/auth/dto"
	"garrison/internal/domain/user"
	"garrison/internal/shared/logger"
)

type GetProfileQuery struct {
	UserID uint
}

type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*dto.UserDTO, error) {
	account, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	return userToDTO(account), nil
}
