package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"garrison/internal/domain/asset"
	"garrison/internal/domain/transfer"
	"garrison/internal/infrastructure/permission"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/logger"
)

type mockTransferRepository struct {
	CreateFunc      func(ctx context.Context, t *transfer.Transfer) error
	GetByIDFunc     func(ctx context.Context, id uint) (*transfer.Transfer, error)
	UpdateFunc      func(ctx context.Context, t *transfer.Transfer) error
	DeleteFunc      func(ctx context.Context, id uint) error
	ListFunc        func(ctx context.Context, filter transfer.Filter) ([]*transfer.Transfer, int64, error)
	ListByAssetFunc func(ctx context.Context, assetID uint) ([]*transfer.Transfer, error)
}

func (m *mockTransferRepository) Create(ctx context.Context, t *transfer.Transfer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTransferRepository) GetByID(ctx context.Context, id uint) (*transfer.Transfer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTransferRepository) Update(ctx context.Context, t *transfer.Transfer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTransferRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTransferRepository) List(ctx context.Context, filter transfer.Filter) ([]*transfer.Transfer, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTransferRepository) ListByAsset(ctx context.Context, assetID uint) ([]*transfer.Transfer, error) {
	if m.ListByAssetFunc != nil {
		return m.ListByAssetFunc(ctx, assetID)
	}
	return nil, nil
}

type mockAssetRepository struct {
	GetByIDFunc          func(ctx context.Context, id uint) (*asset.Asset, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uint) (*asset.Asset, error)
	UpdateFunc           func(ctx context.Context, a *asset.Asset) error
}

func (m *mockAssetRepository) Create(ctx context.Context, a *asset.Asset) error { return nil }

func (m *mockAssetRepository) GetByID(ctx context.Context, id uint) (*asset.Asset, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAssetRepository) GetByIDForUpdate(ctx context.Context, id uint) (*asset.Asset, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

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

func commanderIdentity(baseID uint) authorization.Identity {
	return authorization.Identity{UserID: 2, Email: "bc@base.mil", Role: authorization.RoleBaseCommander, BaseID: &baseID}
}
