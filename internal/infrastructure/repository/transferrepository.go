package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"garrison/internal/domain/transfer"
	"garrison/internal/infrastructure/persistence/models"
	"garrison/internal/shared/db"
	"garrison/internal/shared/errors"
)

type TransferRepository struct {
	db *gorm.DB
}

func NewTransferRepository(db *gorm.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) Create(ctx context.Context, t *transfer.Transfer) error {
	model := transferToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create transfer: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TransferRepository) GetByID(ctx context.Context, id uint) (*transfer.Transfer, error) {
	var model models.TransferModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Transfer not found")
		}
		return nil, fmt.Errorf("failed to find transfer: %w", err)
	}

	return transferToDomain(&model)
}

func (r *TransferRepository) Update(ctx context.Context, t *transfer.Transfer) error {
	model := transferToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.TransferModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"asset_id":       model.AssetID,
		"from_base_id":   model.FromBaseID,
		"to_base_id":     model.ToBaseID,
		"quantity":       model.Quantity,
		"date":           model.Date,
		"status":         model.Status,
		"transferred_by": model.TransferredBy,
		"reason":         model.Reason,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update transfer: %w", result.Error)
	}

	return nil
}

func (r *TransferRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TransferModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete transfer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Transfer not found")
	}
	return nil
}

func (r *TransferRepository) List(ctx context.Context, filter transfer.Filter) ([]*transfer.Transfer, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TransferModel{})

	if filter.AssetID != nil {
		query = query.Where("asset_id = ?", *filter.AssetID)
	}
	if filter.FromBaseID != nil {
		query = query.Where("from_base_id = ?", *filter.FromBaseID)
	}
	if filter.ToBaseID != nil {
		query = query.Where("to_base_id = ?", *filter.ToBaseID)
	}
	if filter.TouchingBaseID != nil {
		query = query.Where("from_base_id = ? OR to_base_id = ?", *filter.TouchingBaseID, *filter.TouchingBaseID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transfers: %w", err)
	}

	query = query.Order("date DESC")
	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		query = query.Limit(filter.Limit).Offset(offset)
	}

	var transferModels []models.TransferModel
	if err := query.Find(&transferModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list transfers: %w", err)
	}

	transfers := make([]*transfer.Transfer, len(transferModels))
	for i := range transferModels {
		t, err := transferToDomain(&transferModels[i])
		if err != nil {
			return nil, 0, err
		}
		transfers[i] = t
	}

	return transfers, total, nil
}

func (r *TransferRepository) ListByAsset(ctx context.Context, assetID uint) ([]*transfer.Transfer, error) {
	var transferModels []models.TransferModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("asset_id = ?", assetID).
		Order("date DESC").
		Find(&transferModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list transfers by asset: %w", err)
	}

	transfers := make([]*transfer.Transfer, len(transferModels))
	for i := range transferModels {
		t, err := transferToDomain(&transferModels[i])
		if err != nil {
			return nil, err
		}
		transfers[i] = t
	}

	return transfers, nil
}

func transferToModel(t *transfer.Transfer) *models.TransferModel {
	return &models.TransferModel{
		ID:            t.ID(),
		AssetID:       t.AssetID(),
		FromBaseID:    t.FromBaseID(),
		ToBaseID:      t.ToBaseID(),
		Quantity:      t.Quantity(),
		Date:          t.Date(),
		Status:        t.Status(),
		TransferredBy: t.TransferredBy(),
		Reason:        t.Reason(),
	}
}

func transferToDomain(m *models.TransferModel) (*transfer.Transfer, error) {
	return transfer.ReconstructTransfer(
		m.ID, m.AssetID, m.FromBaseID, m.ToBaseID,
		m.Quantity,
		m.Date,
		m.Status, m.TransferredBy, m.Reason,
	)
}
