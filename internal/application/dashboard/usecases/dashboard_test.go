package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garrison/internal/domain/dashboard"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/logger"
)

type mockLedger struct {
	AssetsCreatedBeforeFunc     func(ctx context.Context, scope dashboard.Scope, cutoff time.Time) (int64, error)
	AssetsCreatedOnOrBeforeFunc func(ctx context.Context, scope dashboard.Scope, cutoff time.Time) (int64, error)
	PurchasedQuantityFunc       func(ctx context.Context, scope dashboard.Scope) (int64, error)
	TransferredInFunc           func(ctx context.Context, scope dashboard.Scope) (int64, error)
	TransferredOutFunc          func(ctx context.Context, scope dashboard.Scope) (int64, error)
	AssignedCountFunc           func(ctx context.Context, scope dashboard.Scope) (int64, error)
	ExpendedCountFunc           func(ctx context.Context, scope dashboard.Scope) (int64, error)
	PurchaseDetailsFunc         func(ctx context.Context, scope dashboard.Scope) ([]dashboard.PurchaseDetail, error)
	TransferInDetailsFunc       func(ctx context.Context, scope dashboard.Scope) ([]dashboard.TransferDetail, error)
	TransferOutDetailsFunc      func(ctx context.Context, scope dashboard.Scope) ([]dashboard.TransferDetail, error)
}

func (m *mockLedger) AssetsCreatedBefore(ctx context.Context, scope dashboard.Scope, cutoff time.Time) (int64, error) {
	if m.AssetsCreatedBeforeFunc != nil {
		return m.AssetsCreatedBeforeFunc(ctx, scope, cutoff)
	}
	return 0, nil
}

func (m *mockLedger) AssetsCreatedOnOrBefore(ctx context.Context, scope dashboard.Scope, cutoff time.Time) (int64, error) {
	if m.AssetsCreatedOnOrBeforeFunc != nil {
		return m.AssetsCreatedOnOrBeforeFunc(ctx, scope, cutoff)
	}
	return 0, nil
}

func (m *mockLedger) PurchasedQuantity(ctx context.Context, scope dashboard.Scope) (int64, error) {
	if m.PurchasedQuantityFunc != nil {
		return m.PurchasedQuantityFunc(ctx, scope)
	}
	return 0, nil
}

func (m *mockLedger) TransferredInQuantity(ctx context.Context, scope dashboard.Scope) (int64, error) {
	if m.TransferredInFunc != nil {
		return m.TransferredInFunc(ctx, scope)
	}
	return 0, nil
}

func (m *mockLedger) TransferredOutQuantity(ctx context.Context, scope dashboard.Scope) (int64, error) {
	if m.TransferredOutFunc != nil {
		return m.TransferredOutFunc(ctx, scope)
	}
	return 0, nil
}

func (m *mockLedger) AssignedCount(ctx context.Context, scope dashboard.Scope) (int64, error) {
	if m.AssignedCountFunc != nil {
		return m.AssignedCountFunc(ctx, scope)
	}
	return 0, nil
}

func (m *mockLedger) ExpendedCount(ctx context.Context, scope dashboard.Scope) (int64, error) {
	if m.ExpendedCountFunc != nil {
		return m.ExpendedCountFunc(ctx, scope)
	}
	return 0, nil
}

func (m *mockLedger) PurchaseDetails(ctx context.Context, scope dashboard.Scope) ([]dashboard.PurchaseDetail, error) {
	if m.PurchaseDetailsFunc != nil {
		return m.PurchaseDetailsFunc(ctx, scope)
	}
	return nil, nil
}

func (m *mockLedger) TransferInDetails(ctx context.Context, scope dashboard.Scope) ([]dashboard.TransferDetail, error) {
	if m.TransferInDetailsFunc != nil {
		return m.TransferInDetailsFunc(ctx, scope)
	}
	return nil, nil
}

func (m *mockLedger) TransferOutDetails(ctx context.Context, scope dashboard.Scope) ([]dashboard.TransferDetail, error) {
	if m.TransferOutDetailsFunc != nil {
		return m.TransferOutDetailsFunc(ctx, scope)
	}
	return nil, nil
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}

func TestGetMetricsUseCase_Execute_Math(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	ledger := &mockLedger{
		AssetsCreatedBeforeFunc: func(ctx context.Context, scope dashboard.Scope, cutoff time.Time) (int64, error) {
			assert.True(t, cutoff.Equal(start))
			return 10, nil
		},
		AssetsCreatedOnOrBeforeFunc: func(ctx context.Context, scope dashboard.Scope, cutoff time.Time) (int64, error) {
			assert.True(t, cutoff.Equal(end))
			return 17, nil
		},
		PurchasedQuantityFunc: func(ctx context.Context, scope dashboard.Scope) (int64, error) { return 7, nil },
		TransferredInFunc:     func(ctx context.Context, scope dashboard.Scope) (int64, error) { return 3, nil },
		TransferredOutFunc:    func(ctx context.Context, scope dashboard.Scope) (int64, error) { return 2, nil },
		AssignedCountFunc:     func(ctx context.Context, scope dashboard.Scope) (int64, error) { return 4, nil },
		ExpendedCountFunc:     func(ctx context.Context, scope dashboard.Scope) (int64, error) { return 6, nil },
	}

	uc := NewGetMetricsUseCase(ledger, testLogger())
	metrics, err := uc.Execute(context.Background(), GetMetricsQuery{
		Identity:  authorization.Identity{UserID: 1, Role: authorization.RoleAdmin},
		StartDate: &start,
		EndDate:   &end,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), metrics.OpeningBalance)
	assert.Equal(t, int64(17), metrics.ClosingBalance)
	assert.Equal(t, int64(8), metrics.NetMovement)
	assert.Equal(t, int64(7), metrics.Purchases)
	assert.Equal(t, int64(3), metrics.TransfersIn)
	assert.Equal(t, int64(2), metrics.TransfersOut)
	assert.Equal(t, int64(4), metrics.AssignedAssets)
	assert.Equal(t, int64(6), metrics.ExpendedAssets)
}

func TestGetMetricsUseCase_Execute_NonAdminPinnedToOwnBase(t *testing.T) {
	ownBase := uint(2)
	otherBase := uint(3)
	ledger := &mockLedger{
		PurchasedQuantityFunc: func(ctx context.Context, scope dashboard.Scope) (int64, error) {
			require.NotNil(t, scope.BaseID)
			assert.Equal(t, ownBase, *scope.BaseID)
			return 0, nil
		},
	}

	uc := NewGetMetricsUseCase(ledger, testLogger())
	_, err := uc.Execute(context.Background(), GetMetricsQuery{
		Identity: authorization.Identity{UserID: 2, Role: authorization.RoleBaseCommander, BaseID: &ownBase},
		BaseID:   &otherBase,
	})
	require.NoError(t, err)
}

func TestNetMovementUseCase_Execute(t *testing.T) {
	ledger := &mockLedger{
		PurchaseDetailsFunc: func(ctx context.Context, scope dashboard.Scope) ([]dashboard.PurchaseDetail, error) {
			return []dashboard.PurchaseDetail{{ID: 1, AssetType: "radio", Quantity: 4, BaseID: 2}}, nil
		},
		TransferInDetailsFunc: func(ctx context.Context, scope dashboard.Scope) ([]dashboard.TransferDetail, error) {
			return []dashboard.TransferDetail{{ID: 7, AssetID: 9, FromBaseID: 1, ToBaseID: 2, Quantity: 1}}, nil
		},
	}

	baseID := uint(2)
	uc := NewNetMovementUseCase(ledger, testLogger())
	result, err := uc.Execute(context.Background(), NetMovementQuery{
		Identity: authorization.Identity{UserID: 3, Role: authorization.RoleLogisticsOfficer, BaseID: &baseID},
	})

	require.NoError(t, err)
	require.Len(t, result.Purchases, 1)
	require.Len(t, result.TransfersIn, 1)
	assert.Empty(t, result.TransfersOut)
}
