package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"garrison/internal/domain/asset"
	"garrison/internal/domain/assignment"
	"garrison/internal/domain/user"
	"garrison/internal/infrastructure/permission"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/logger"
)

type mockAssetRepository struct {
	CreateFunc           func(ctx context.Context, a *asset.Asset) error
	GetByIDFunc          func(ctx context.Context, id uint) (*asset.Asset, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uint) (*asset.Asset, error)
	UpdateFunc           func(ctx context.Context, a *asset.Asset) error
	DeleteFunc           func(ctx context.Context, id uint) error
	ListFunc             func(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error)
}

func (m *mockAssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

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

func (m *mockAssetRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockAssetRepository) List(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockAssignmentRepository struct {
	CreateFunc             func(ctx context.Context, a *assignment.Assignment) error
	GetByIDFunc            func(ctx context.Context, id uint) (*assignment.Assignment, error)
	GetActiveByAssetIDFunc func(ctx context.Context, assetID uint) (*assignment.Assignment, error)
	UpdateFunc             func(ctx context.Context, a *assignment.Assignment) error
	DeleteFunc             func(ctx context.Context, id uint) error
	ListFunc               func(ctx context.Context, filter assignment.Filter) ([]*assignment.Assignment, int64, error)
	ListByAssetFunc        func(ctx context.Context, assetID uint) ([]*assignment.Assignment, error)
	ListByPersonnelFunc    func(ctx context.Context, personnelID uint) ([]*assignment.Assignment, error)
}

func (m *mockAssignmentRepository) Create(ctx context.Context, a *assignment.Assignment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssignmentRepository) GetByID(ctx context.Context, id uint) (*assignment.Assignment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) GetActiveByAssetID(ctx context.Context, assetID uint) (*assignment.Assignment, error) {
	if m.GetActiveByAssetIDFunc != nil {
		return m.GetActiveByAssetIDFunc(ctx, assetID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssignmentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockAssignmentRepository) List(ctx context.Context, filter assignment.Filter) ([]*assignment.Assignment, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockAssignmentRepository) ListByAsset(ctx context.Context, assetID uint) ([]*assignment.Assignment, error) {
	if m.ListByAssetFunc != nil {
		return m.ListByAssetFunc(ctx, assetID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) ListByPersonnel(ctx context.Context, personnelID uint) ([]*assignment.Assignment, error) {
	if m.ListByPersonnelFunc != nil {
		return m.ListByPersonnelFunc(ctx, personnelID)
	}
	return nil, nil
}

type mockUserRepository struct {
	CreateFunc     func(ctx context.Context, u *user.User) error
	GetByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	UpdateFunc     func(ctx context.Context, u *user.User) error
	ListFunc       func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
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
