// Package user models accounts and personnel. Non-admin users are pinned to
// a base; that base fixes the scope of everything they may touch.
package user

import (
	"fmt"
	"time"

	"garrison/internal/shared/authorization"
)

type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	role         authorization.UserRole
	baseID       *uint
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name, email, passwordHash string, role authorization.UserRole, baseID *uint) (*User, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if !role.IsAdmin() && baseID == nil {
		return nil, fmt.Errorf("base ID is required for role %s", role)
	}

	now := time.Now().UTC()
	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		baseID:       baseID,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	name, email, passwordHash string,
	role authorization.UserRole,
	baseID *uint,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		baseID:       baseID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                          { return u.id }
func (u *User) Name() string                      { return u.name }
func (u *User) Email() string                     { return u.email }
func (u *User) PasswordHash() string              { return u.passwordHash }
func (u *User) Role() authorization.UserRole      { return u.role }
func (u *User) BaseID() *uint                     { return u.baseID }
func (u *User) CreatedAt() time.Time              { return u.createdAt }
func (u *User) UpdatedAt() time.Time              { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// Identity projects the user into the token payload.
func (u *User) Identity() authorization.Identity {
	return authorization.Identity{
		UserID: u.id,
		Email:  u.email,
		Role:   u.role,
		BaseID: u.baseID,
	}
}

// Rename updates the display name.
func (u *User) Rename(name string) {
	if name != "" {
		u.name = name
		u.updatedAt = time.Now().UTC()
	}
}

// ChangePasswordHash replaces the stored hash; the caller hashes.
func (u *User) ChangePasswordHash(hash string) {
	if hash != "" {
		u.passwordHash = hash
		u.updatedAt = time.Now().UTC()
	}
}
