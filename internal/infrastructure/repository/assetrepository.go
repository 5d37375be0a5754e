package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"garrison/internal/domain/asset"
	"garrison/internal/infrastructure/persistence/models"
	"garrison/internal/shared/db"
	"garrison/internal/shared/errors"
)

type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	model := assetToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AssetRepository) GetByID(ctx context.Context, id uint) (*asset.Asset, error) {
	var model models.AssetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Asset not found")
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	return assetToDomain(&model)
}

// GetByIDForUpdate locks the row until the surrounding transaction ends.
// Assignment and transfer check-then-act sequences rely on this.
func (r *AssetRepository) GetByIDForUpdate(ctx context.Context, id uint) (*asset.Asset, error) {
	var model models.AssetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Asset not found")
		}
		return nil, fmt.Errorf("failed to lock asset: %w", err)
	}

	return assetToDomain(&model)
}

func (r *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	model := assetToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.AssetModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"name":          model.Name,
		"type":          model.Type,
		"description":   model.Description,
		"serial_number": model.SerialNumber,
		"status":        model.Status,
		"base_id":       model.BaseID,
		"value":         model.Value,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update asset: %w", result.Error)
	}

	return nil
}

func (r *AssetRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.AssetModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Asset not found")
	}
	return nil
}

func (r *AssetRepository) List(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AssetModel{})

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.BaseID != nil {
		query = query.Where("base_id = ?", *filter.BaseID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("description LIKE ? OR serial_number LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count assets: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		query = query.Limit(filter.Limit).Offset(offset)
	}

	var assetModels []models.AssetModel
	if err := query.Find(&assetModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list assets: %w", err)
	}

	assets := make([]*asset.Asset, len(assetModels))
	for i := range assetModels {
		a, err := assetToDomain(&assetModels[i])
		if err != nil {
			return nil, 0, err
		}
		assets[i] = a
	}

	return assets, total, nil
}

func assetToModel(a *asset.Asset) *models.AssetModel {
	return &models.AssetModel{
		ID:           a.ID(),
		Name:         a.Name(),
		Type:         a.Type(),
		Description:  a.Description(),
		SerialNumber: a.SerialNumber(),
		Status:       string(a.Status()),
		BaseID:       a.BaseID(),
		Value:        a.Value(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
}

func assetToDomain(m *models.AssetModel) (*asset.Asset, error) {
	return asset.ReconstructAsset(
		m.ID,
		m.Name, m.Type, m.Description, m.SerialNumber,
		m.BaseID,
		asset.Status(m.Status),
		m.Value,
		m.CreatedAt, m.UpdatedAt,
	)
}
