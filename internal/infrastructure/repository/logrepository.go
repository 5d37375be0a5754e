package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"garrison/internal/domain/audit"
	"garrison/internal/infrastructure/persistence/models"
	"garrison/internal/shared/db"
)

type LogRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db: db}
}

func (r *LogRepository) Create(ctx context.Context, e *audit.Entry) error {
	details, err := json.Marshal(e.Details)
	if err != nil {
		return fmt.Errorf("failed to marshal log details: %w", err)
	}

	model := &models.LogModel{
		UserID:    e.UserID,
		Action:    e.Action,
		Details:   details,
		Timestamp: e.Timestamp,
		IPAddress: e.IPAddress,
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create log entry: %w", err)
	}

	e.ID = model.ID
	return nil
}

func (r *LogRepository) List(ctx context.Context, filter audit.Filter) ([]*audit.ListedEntry, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.LogModel{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.StartDate != nil {
		query = query.Where("timestamp >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("timestamp <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count log entries: %w", err)
	}

	query = query.Order("timestamp DESC")
	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		query = query.Limit(filter.Limit).Offset(offset)
	}

	var logModels []models.LogModel
	if err := query.Find(&logModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list log entries: %w", err)
	}

	entries := make([]*audit.ListedEntry, len(logModels))
	userIDs := make([]uint, 0, len(logModels))
	seen := map[uint]bool{}
	for i := range logModels {
		entry, err := logToDomain(&logModels[i])
		if err != nil {
			return nil, 0, err
		}
		entries[i] = &audit.ListedEntry{Entry: *entry}
		if !seen[entry.UserID] {
			seen[entry.UserID] = true
			userIDs = append(userIDs, entry.UserID)
		}
	}

	if len(userIDs) > 0 {
		actors, err := r.loadActors(ctx, userIDs)
		if err != nil {
			return nil, 0, err
		}
		for _, e := range entries {
			if actor, ok := actors[e.UserID]; ok {
				e.User = actor
			}
		}
	}

	return entries, total, nil
}

// loadActors fetches user summaries for the listed entries in one query.
func (r *LogRepository) loadActors(ctx context.Context, userIDs []uint) (map[uint]*audit.Actor, error) {
	var userModels []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", userIDs).Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load log actors: %w", err)
	}

	actors := make(map[uint]*audit.Actor, len(userModels))
	for i := range userModels {
		m := &userModels[i]
		actors[m.ID] = &audit.Actor{
			ID:    m.ID,
			Name:  m.Name,
			Email: m.Email,
			Role:  m.Role,
		}
	}
	return actors, nil
}

func logToDomain(m *models.LogModel) (*audit.Entry, error) {
	var details audit.Details
	if len(m.Details) > 0 {
		if err := json.Unmarshal(m.Details, &details); err != nil {
			return nil, fmt.Errorf("failed to unmarshal log details: %w", err)
		}
	}

	return &audit.Entry{
		ID:        m.ID,
		UserID:    m.UserID,
		Action:    m.Action,
		Details:   details,
		Timestamp: m.Timestamp,
		IPAddress: m.IPAddress,
	}, nil
}
