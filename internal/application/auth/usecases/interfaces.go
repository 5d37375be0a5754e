package usecases

import (
	"context"

	"garrison/internal/application/auth/dto"
	"garrison/internal/shared/authorization"
)

// PasswordHasher abstracts bcrypt for the auth usecases.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer signs session tokens for an authenticated identity.
type TokenIssuer interface {
	Generate(identity authorization.Identity) (string, error)
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*dto.UserDTO, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) ([]*dto.UserDTO, error)
}
