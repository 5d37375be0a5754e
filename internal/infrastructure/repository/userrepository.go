package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"garrison/internal/domain/user"
	"garrison/internal/infrastructure/persistence/models"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/db"
	"garrison/internal/shared/errors"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := userToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("User not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return userToDomain(&model)
}

// GetByEmail returns nil, nil when no user has the email; login and
// registration distinguish absence from lookup failure.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("email = ?", email).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return userToDomain(&model)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := userToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.UserModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"name":          model.Name,
		"email":         model.Email,
		"password_hash": model.PasswordHash,
		"role":          model.Role,
		"base_id":       model.BaseID,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	var userModels []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id ASC").Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, len(userModels))
	for i := range userModels {
		u, err := userToDomain(&userModels[i])
		if err != nil {
			return nil, err
		}
		users[i] = u
	}

	return users, nil
}

func userToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		BaseID:       u.BaseID(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func userToDomain(m *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		m.ID,
		m.Name, m.Email, m.PasswordHash,
		authorization.ParseUserRole(m.Role),
		m.BaseID,
		m.CreatedAt, m.UpdatedAt,
	)
}
