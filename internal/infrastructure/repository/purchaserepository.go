package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"garrison/internal/domain/purchase"
	"garrison/internal/infrastructure/persistence/models"
	"garrison/internal/shared/db"
	"garrison/internal/shared/errors"
)

type PurchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

func (r *PurchaseRepository) Create(ctx context.Context, p *purchase.Purchase) error {
	model := purchaseToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *PurchaseRepository) GetByID(ctx context.Context, id uint) (*purchase.Purchase, error) {
	var model models.PurchaseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Purchase not found")
		}
		return nil, fmt.Errorf("failed to find purchase: %w", err)
	}

	return purchaseToDomain(&model)
}

func (r *PurchaseRepository) Update(ctx context.Context, p *purchase.Purchase) error {
	model := purchaseToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.PurchaseModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"asset_type":   model.AssetType,
		"quantity":     model.Quantity,
		"date":         model.Date,
		"status":       model.Status,
		"approved_by":  model.ApprovedBy,
		"requested_by": model.RequestedBy,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update purchase: %w", result.Error)
	}

	return nil
}

func (r *PurchaseRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.PurchaseModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete purchase: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Purchase not found")
	}
	return nil
}

func (r *PurchaseRepository) List(ctx context.Context, filter purchase.Filter) ([]*purchase.Purchase, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.PurchaseModel{})

	if filter.BaseID != nil {
		query = query.Where("base_id = ?", *filter.BaseID)
	}
	if filter.AssetType != "" {
		query = query.Where("asset_type = ?", filter.AssetType)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count purchases: %w", err)
	}

	query = query.Order("date DESC")
	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		query = query.Limit(filter.Limit).Offset(offset)
	}

	var purchaseModels []models.PurchaseModel
	if err := query.Find(&purchaseModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list purchases: %w", err)
	}

	purchases := make([]*purchase.Purchase, len(purchaseModels))
	for i := range purchaseModels {
		p, err := purchaseToDomain(&purchaseModels[i])
		if err != nil {
			return nil, 0, err
		}
		purchases[i] = p
	}

	return purchases, total, nil
}

func purchaseToModel(p *purchase.Purchase) *models.PurchaseModel {
	return &models.PurchaseModel{
		ID:          p.ID(),
		AssetType:   p.AssetType(),
		Quantity:    p.Quantity(),
		BaseID:      p.BaseID(),
		Date:        p.Date(),
		Status:      p.Status(),
		ApprovedBy:  p.ApprovedBy(),
		RequestedBy: p.RequestedBy(),
	}
}

func purchaseToDomain(m *models.PurchaseModel) (*purchase.Purchase, error) {
	return purchase.ReconstructPurchase(
		m.ID,
		m.AssetType,
		m.Quantity,
		m.BaseID,
		m.Date,
		m.Status, m.ApprovedBy, m.RequestedBy,
	)
}
