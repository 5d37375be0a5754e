package usecases

import (
	"context"
	"strings"

	"garrison/internal/application/auth/dto"
	"garrison/internal/domain/user"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/errors"
	"garrison/internal/shared/logger"
)

type RegisterCommand struct {
	Name     string
	Email    string
	Password string
	Role     string
	BaseID   *uint
}

type RegisterResult struct {
	Token string
	User  *dto.UserDTO
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check existing user", "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewBadRequestError("User already exists")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	role := authorization.ParseUserRole(cmd.Role)
	newUser, err := user.NewUser(cmd.Name, email, hash, role, cmd.BaseID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, err
	}

	token, err := uc.tokens.Generate(newUser.Identity())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", newUser.ID())
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "role", role.String())

	return &RegisterResult{
		Token: token,
		User:  userToDTO(newUser),
	}, nil
}

func (uc *RegisterUseCase) validateCommand(cmd RegisterCommand) error {
	if strings.TrimSpace(cmd.Name) == "" {
		return errors.NewValidationError("name is required")
	}
	if strings.TrimSpace(cmd.Email) == "" {
		return errors.NewValidationError("email is required")
	}
	if len(cmd.Password) < 6 {
		return errors.NewValidationError("password must be at least 6 characters")
	}
	role := authorization.ParseUserRole(cmd.Role)
	if !role.IsAdmin() && cmd.BaseID == nil {
		return errors.NewValidationError("base_id is required for non-admin users")
	}
	return nil
}

func userToDTO(u *user.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:     u.ID(),
		Name:   u.Name(),
		Email:  u.Email(),
		Role:   u.Role().String(),
		BaseID: u.BaseID(),
	}
}
