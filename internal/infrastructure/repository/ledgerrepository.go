package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"garrison/internal/domain/dashboard"
	"garrison/internal/infrastructure/persistence/models"
	"garrison/internal/shared/constants"
	"garrison/internal/shared/db"
)

// LedgerRepository answers the dashboard's aggregate queries against the
// asset, purchase, transfer and assignment tables.
type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

var _ dashboard.LedgerReader = (*LedgerRepository)(nil)

func (r *LedgerRepository) AssetsCreatedBefore(ctx context.Context, scope dashboard.Scope, cutoff time.Time) (int64, error) {
	return r.countAssetsCreated(ctx, scope, "created_at < ?", cutoff)
}

// AssetsCreatedOnOrBefore is the closing-balance variant: an asset created
// exactly at the period end still belongs to the period.
func (r *LedgerRepository) AssetsCreatedOnOrBefore(ctx context.Context, scope dashboard.Scope, cutoff time.Time) (int64, error) {
	return r.countAssetsCreated(ctx, scope, "created_at <= ?", cutoff)
}

func (r *LedgerRepository) countAssetsCreated(ctx context.Context, scope dashboard.Scope, cond string, cutoff time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AssetModel{}).Where(cond, cutoff)

	if scope.BaseID != nil {
		query = query.Where("base_id = ?", *scope.BaseID)
	}
	if scope.EquipmentType != "" {
		query = query.Where("type = ?", scope.EquipmentType)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count assets: %w", err)
	}
	return count, nil
}

func (r *LedgerRepository) PurchasedQuantity(ctx context.Context, scope dashboard.Scope) (int64, error) {
	query := r.purchaseQuery(ctx, scope)

	var sum *int64
	if err := query.Select("SUM(quantity)").Scan(&sum).Error; err != nil {
		return 0, fmt.Errorf("failed to sum purchased quantity: %w", err)
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

func (r *LedgerRepository) TransferredInQuantity(ctx context.Context, scope dashboard.Scope) (int64, error) {
	return r.sumTransfers(ctx, scope, "to_base_id")
}

func (r *LedgerRepository) TransferredOutQuantity(ctx context.Context, scope dashboard.Scope) (int64, error) {
	return r.sumTransfers(ctx, scope, "from_base_id")
}

func (r *LedgerRepository) AssignedCount(ctx context.Context, scope dashboard.Scope) (int64, error) {
	query := r.assignmentQuery(ctx, scope).
		Where("assignments.expended_date IS NULL")

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count assigned assets: %w", err)
	}
	return count, nil
}

func (r *LedgerRepository) ExpendedCount(ctx context.Context, scope dashboard.Scope) (int64, error) {
	query := r.assignmentQuery(ctx, scope).
		Where("assignments.expended_date IS NOT NULL")

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count expended assets: %w", err)
	}
	return count, nil
}

func (r *LedgerRepository) PurchaseDetails(ctx context.Context, scope dashboard.Scope) ([]dashboard.PurchaseDetail, error) {
	var purchaseModels []models.PurchaseModel
	if err := r.purchaseQuery(ctx, scope).Order("date DESC").Find(&purchaseModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load purchase details: %w", err)
	}

	details := make([]dashboard.PurchaseDetail, len(purchaseModels))
	for i, m := range purchaseModels {
		details[i] = dashboard.PurchaseDetail{
			ID:        m.ID,
			AssetType: m.AssetType,
			Quantity:  m.Quantity,
			BaseID:    m.BaseID,
			Date:      m.Date,
		}
	}
	return details, nil
}

func (r *LedgerRepository) TransferInDetails(ctx context.Context, scope dashboard.Scope) ([]dashboard.TransferDetail, error) {
	return r.transferDetails(ctx, scope, "to_base_id")
}

func (r *LedgerRepository) TransferOutDetails(ctx context.Context, scope dashboard.Scope) ([]dashboard.TransferDetail, error) {
	return r.transferDetails(ctx, scope, "from_base_id")
}

func (r *LedgerRepository) purchaseQuery(ctx context.Context, scope dashboard.Scope) *gorm.DB {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.PurchaseModel{}).
		Where("date BETWEEN ? AND ?", scope.Start, scope.End)

	if scope.BaseID != nil {
		query = query.Where("base_id = ?", *scope.BaseID)
	}
	if scope.EquipmentType != "" {
		query = query.Where("asset_type = ?", scope.EquipmentType)
	}
	return query
}

// transferQuery scopes transfers by direction column (to_base_id for inbound,
// from_base_id for outbound). Equipment type rides on the linked asset.
func (r *LedgerRepository) transferQuery(ctx context.Context, scope dashboard.Scope, baseColumn string) *gorm.DB {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TransferModel{}).
		Where("transfers.date BETWEEN ? AND ?", scope.Start, scope.End)

	if scope.BaseID != nil {
		query = query.Where("transfers."+baseColumn+" = ?", *scope.BaseID)
	}
	if scope.EquipmentType != "" {
		query = query.
			Joins(fmt.Sprintf("JOIN %s ON %s.id = transfers.asset_id", constants.TableAssets, constants.TableAssets)).
			Where(constants.TableAssets+".type = ?", scope.EquipmentType)
	}
	return query
}

func (r *LedgerRepository) sumTransfers(ctx context.Context, scope dashboard.Scope, baseColumn string) (int64, error) {
	var sum *int64
	if err := r.transferQuery(ctx, scope, baseColumn).
		Select("SUM(transfers.quantity)").
		Scan(&sum).Error; err != nil {
		return 0, fmt.Errorf("failed to sum transfers: %w", err)
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

func (r *LedgerRepository) transferDetails(ctx context.Context, scope dashboard.Scope, baseColumn string) ([]dashboard.TransferDetail, error) {
	var transferModels []models.TransferModel
	if err := r.transferQuery(ctx, scope, baseColumn).
		Order("transfers.date DESC").
		Find(&transferModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load transfer details: %w", err)
	}

	details := make([]dashboard.TransferDetail, len(transferModels))
	for i, m := range transferModels {
		details[i] = dashboard.TransferDetail{
			ID:         m.ID,
			AssetID:    m.AssetID,
			FromBaseID: m.FromBaseID,
			ToBaseID:   m.ToBaseID,
			Quantity:   m.Quantity,
			Date:       m.Date,
		}
	}
	return details, nil
}

// assignmentQuery joins each assignment to its asset. The period filter rides
// on the asset's creation time; assigned and expended split on expended_date.
func (r *LedgerRepository) assignmentQuery(ctx context.Context, scope dashboard.Scope) *gorm.DB {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AssignmentModel{}).
		Joins(fmt.Sprintf("JOIN %s ON %s.id = assignments.asset_id", constants.TableAssets, constants.TableAssets)).
		Where(constants.TableAssets+".created_at BETWEEN ? AND ?", scope.Start, scope.End)

	if scope.BaseID != nil {
		query = query.Where(constants.TableAssets+".base_id = ?", *scope.BaseID)
	}
	if scope.EquipmentType != "" {
		query = query.Where(constants.TableAssets+".type = ?", scope.EquipmentType)
	}
	return query
}
