package usecases

import (
	"context"
	"time"

	"garrison/internal/domain/audit"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/logger"
	"garrison/internal/shared/utils"
)

type ListLogsQuery struct {
	Identity  authorization.Identity
	UserID    *uint
	Action    string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

type ListLogsResult struct {
	Logs       []*audit.ListedEntry
	Total      int64
	Page       int
	TotalPages int
}

type ListLogsExecutor interface {
	Execute(ctx context.Context, query ListLogsQuery) (*ListLogsResult, error)
}

// ListLogsUseCase reads the audit trail, admin only. Entries come back newest
// first with the acting user's summary attached.
type ListLogsUseCase struct {
	auditRepo audit.Repository
	gate      *authorization.Gate
	logger    logger.Interface
}

func NewListLogsUseCase(auditRepo audit.Repository, gate *authorization.Gate, logger logger.Interface) *ListLogsUseCase {
	return &ListLogsUseCase{auditRepo: auditRepo, gate: gate, logger: logger}
}

func (uc *ListLogsUseCase) Execute(ctx context.Context, query ListLogsQuery) (*ListLogsResult, error) {
	if err := uc.gate.RequireAdmin(query.Identity); err != nil {
		return nil, err
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}

	logs, total, err := uc.auditRepo.List(ctx, audit.Filter{
		UserID:    query.UserID,
		Action:    query.Action,
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		uc.logger.Errorw("failed to list audit logs", "error", err)
		return nil, err
	}

	return &ListLogsResult{
		Logs:       logs,
		Total:      total,
		Page:       page,
		TotalPages: utils.TotalPages(total, limit),
	}, nil
}
