package usecases

import (
	"context"
	"strings"

	"garrison/internal/application/auth/dto"
	"garrison/internal/domain/user"
	"garrison/internal/shared/errors"
	"garrison/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  *dto.UserDTO
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute authenticates by email and password. Unknown email and wrong
// password produce the same error so callers cannot probe for accounts.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewInvalidCredentialsError()
	}

	account, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, err
	}
	if account == nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := uc.hasher.Verify(cmd.Password, account.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "email", email)
		return nil, errors.NewInvalidCredentialsError()
	}

	token, err := uc.tokens.Generate(account.Identity())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", account.ID())
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in", "user_id", account.ID())

	return &LoginResult{
		Token: token,
		User:  userToDTO(account),
	}, nil
}
