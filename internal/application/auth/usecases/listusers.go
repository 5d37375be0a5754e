package usecases

import (
	"context"

	"garrison/internal/application/auth/dto"
	"garrison/internal/domain/user"
	"garrison/internal/shared/logger"
)

// ListUsersQuery has no parameters; any authenticated user may list accounts
// (they appear as assignable personnel).
type ListUsersQuery struct{}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) ([]*dto.UserDTO, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	result := make([]*dto.UserDTO, len(users))
	for i, u := range users {
		result[i] = userToDTO(u)
	}
	return result, nil
}
