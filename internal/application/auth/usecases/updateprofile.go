package usecases

import (
	"context"
	"strings"

	"garrison/internal/application/auth/dto"
	"garrison/internal/domain/user"
	"garrison/internal/shared/errors"
	"garrison/internal/shared/logger"
)

// UpdateProfileCommand carries a partial profile update for the caller's own
// account; nil fields keep prior values.
type UpdateProfileCommand struct {
	UserID   uint
	Name     *string
	Password *string
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewUpdateProfileUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error) {
	account, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		if strings.TrimSpace(*cmd.Name) == "" {
			return nil, errors.NewValidationError("name cannot be empty")
		}
		account.Rename(*cmd.Name)
	}

	if cmd.Password != nil {
		if len(*cmd.Password) < 6 {
			return nil, errors.NewValidationError("password must be at least 6 characters")
		}
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to process password")
		}
		account.ChangePasswordHash(hash)
	}

	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Errorw("failed to update profile", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	uc.logger.Infow("profile updated", "user_id", cmd.UserID)
	return userToDTO(account), nil
}
