package usecases

import (
	"context"

	"garrison/internal/domain/dashboard"
)

type GetMetricsExecutor interface {
	Execute(ctx context.Context, query GetMetricsQuery) (*dashboard.Metrics, error)
}

type NetMovementExecutor interface {
	Execute(ctx context.Context, query NetMovementQuery) (*NetMovementResult, error)
}
