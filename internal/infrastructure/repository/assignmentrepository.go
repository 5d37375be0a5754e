package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"garrison/internal/domain/assignment"
	"garrison/internal/infrastructure/persistence/models"
	"garrison/internal/shared/db"
	"garrison/internal/shared/errors"
)

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) Create(ctx context.Context, a *assignment.Assignment) error {
	model := assignmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id uint) (*assignment.Assignment, error) {
	var model models.AssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Assignment not found")
		}
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}

	return assignmentToDomain(&model)
}

// GetActiveByAssetID returns the open assignment for an asset, or nil when
// the asset is unassigned.
func (r *AssignmentRepository) GetActiveByAssetID(ctx context.Context, assetID uint) (*assignment.Assignment, error) {
	var model models.AssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("asset_id = ? AND expended_date IS NULL", assetID).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active assignment: %w", err)
	}

	return assignmentToDomain(&model)
}

func (r *AssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	model := assignmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.AssignmentModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"asset_id":      model.AssetID,
		"personnel_id":  model.PersonnelID,
		"assigned_at":   model.AssignedAt,
		"expended_date": model.ExpendedDate,
		"assigned_by":   model.AssignedBy,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update assignment: %w", result.Error)
	}

	return nil
}

func (r *AssignmentRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.AssignmentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Assignment not found")
	}
	return nil
}

func (r *AssignmentRepository) List(ctx context.Context, filter assignment.Filter) ([]*assignment.Assignment, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AssignmentModel{})

	if filter.AssetID != nil {
		query = query.Where("asset_id = ?", *filter.AssetID)
	}
	if filter.PersonnelID != nil {
		query = query.Where("personnel_id = ?", *filter.PersonnelID)
	}
	switch filter.Status {
	case assignment.StatusActive:
		query = query.Where("expended_date IS NULL")
	case assignment.StatusExpended:
		query = query.Where("expended_date IS NOT NULL")
	}
	if filter.BaseID != nil {
		// Scope by the linked asset's current base.
		query = query.Where(
			"asset_id IN (?)",
			tx.Session(&gorm.Session{NewDB: true}).
				Model(&models.AssetModel{}).
				Select("id").
				Where("base_id = ?", *filter.BaseID),
		)
	}
	if filter.StartDate != nil {
		query = query.Where("assigned_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("assigned_at <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count assignments: %w", err)
	}

	query = query.Order("assigned_at DESC")
	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		query = query.Limit(filter.Limit).Offset(offset)
	}

	var assignmentModels []models.AssignmentModel
	if err := query.Find(&assignmentModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list assignments: %w", err)
	}

	assignments, err := assignmentsToDomain(assignmentModels)
	if err != nil {
		return nil, 0, err
	}
	return assignments, total, nil
}

func (r *AssignmentRepository) ListByAsset(ctx context.Context, assetID uint) ([]*assignment.Assignment, error) {
	var assignmentModels []models.AssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("asset_id = ?", assetID).
		Order("assigned_at DESC").
		Find(&assignmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignments by asset: %w", err)
	}

	return assignmentsToDomain(assignmentModels)
}

func (r *AssignmentRepository) ListByPersonnel(ctx context.Context, personnelID uint) ([]*assignment.Assignment, error) {
	var assignmentModels []models.AssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("personnel_id = ?", personnelID).
		Order("assigned_at DESC").
		Find(&assignmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignments by personnel: %w", err)
	}

	return assignmentsToDomain(assignmentModels)
}

func assignmentsToDomain(assignmentModels []models.AssignmentModel) ([]*assignment.Assignment, error) {
	assignments := make([]*assignment.Assignment, len(assignmentModels))
	for i := range assignmentModels {
		a, err := assignmentToDomain(&assignmentModels[i])
		if err != nil {
			return nil, err
		}
		assignments[i] = a
	}
	return assignments, nil
}

func assignmentToModel(a *assignment.Assignment) *models.AssignmentModel {
	return &models.AssignmentModel{
		ID:           a.ID(),
		AssetID:      a.AssetID(),
		PersonnelID:  a.PersonnelID(),
		AssignedAt:   a.AssignedAt(),
		ExpendedDate: a.ExpendedDate(),
		AssignedBy:   a.AssignedBy(),
	}
}

func assignmentToDomain(m *models.AssignmentModel) (*assignment.Assignment, error) {
	return assignment.ReconstructAssignment(
		m.ID, m.AssetID, m.PersonnelID,
		m.AssignedAt,
		m.ExpendedDate,
		m.AssignedBy,
	)
}
