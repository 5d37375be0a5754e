package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"garrison/internal/domain/base"
	"garrison/internal/infrastructure/persistence/models"
	"garrison/internal/shared/db"
	"garrison/internal/shared/errors"
)

type BaseRepository struct {
	db *gorm.DB
}

func NewBaseRepository(db *gorm.DB) *BaseRepository {
	return &BaseRepository{db: db}
}

func (r *BaseRepository) Create(ctx context.Context, b *base.Base) error {
	model := &models.BaseModel{
		Name:     b.Name(),
		Location: b.Location(),
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create base: %w", err)
	}

	return b.SetID(model.ID)
}

func (r *BaseRepository) GetByID(ctx context.Context, id uint) (*base.Base, error) {
	var model models.BaseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Base not found")
		}
		return nil, fmt.Errorf("failed to find base: %w", err)
	}

	return base.ReconstructBase(model.ID, model.Name, model.Location, model.CreatedAt)
}

func (r *BaseRepository) List(ctx context.Context) ([]*base.Base, error) {
	var baseModels []models.BaseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&baseModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list bases: %w", err)
	}

	bases := make([]*base.Base, len(baseModels))
	for i := range baseModels {
		b, err := base.ReconstructBase(baseModels[i].ID, baseModels[i].Name, baseModels[i].Location, baseModels[i].CreatedAt)
		if err != nil {
			return nil, err
		}
		bases[i] = b
	}

	return bases, nil
}
