package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"garrison/internal/domain/asset"
	"garrison/internal/domain/purchase"
	"garrison/internal/infrastructure/permission"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/logger"
)

type mockPurchaseRepository struct {
	CreateFunc  func(ctx context.Context, p *purchase.Purchase) error
	GetByIDFunc func(ctx context.Context, id uint) (*purchase.Purchase, error)
	UpdateFunc  func(ctx context.Context, p *purchase.Purchase) error
	DeleteFunc  func(ctx context.Context, id uint) error
	ListFunc    func(ctx context.Context, filter purchase.Filter) ([]*purchase.Purchase, int64, error)
}

func (m *mockPurchaseRepository) Create(ctx context.Context, p *purchase.Purchase) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockPurchaseRepository) GetByID(ctx context.Context, id uint) (*purchase.Purchase, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPurchaseRepository) Update(ctx context.Context, p *purchase.Purchase) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPurchaseRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPurchaseRepository) List(ctx context.Context, filter purchase.Filter) ([]*purchase.Purchase, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockAssetRepository struct {
	CreateFunc func(ctx context.Context, a *asset.Asset) error
}

func (m *mockAssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepository) GetByID(ctx context.Context, id uint) (*asset.Asset, error) {
	return nil, nil
}

func (m *mockAssetRepository) GetByIDForUpdate(ctx context.Context, id uint) (*asset.Asset, error) {
	return nil, nil
}

func (m *mockAssetRepository) Update(ctx context.Context, a *asset.Asset) error { return nil }

func (m *mockAssetRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockAssetRepository) List(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error) {
	return nil, 0, nil
}

type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}

func testGate(t *testing.T) *authorization.Gate {
	t.Helper()
	enforcer, err := permission.NewEnforcer(testLogger())
	require.NoError(t, err)
	return authorization.NewGate(enforcer)
}

func adminIdentity() authorization.Identity {
	return authorization.Identity{UserID: 1, Email: "admin@hq.mil", Role: authorization.RoleAdmin}
}

func officerIdentity(baseID uint) authorization.Identity {
	return authorization.Identity{UserID: 3, Email: "lo@base.mil", Role: authorization.RoleLogisticsOfficer, BaseID: &baseID}
}
