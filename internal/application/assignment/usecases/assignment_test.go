package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garrison/internal/domain/asset"
	"garrison/internal/domain/assignment"
	"garrison/internal/domain/user"
	"garrison/internal/shared/authorization"
	sharedErrors "garrison/internal/shared/errors"
)

func storedUnit(t *testing.T, id, baseID uint, status asset.Status) *asset.Asset {
	t.Helper()
	now := time.Now().UTC()
	a, err := asset.ReconstructAsset(id, "NVG Set", "optics", "Night vision goggles", "OPTICS-300", baseID, status, nil, now, now)
	require.NoError(t, err)
	return a
}

func storedAssignment(t *testing.T, id, assetID, personnelID uint) *assignment.Assignment {
	t.Helper()
	a, err := assignment.ReconstructAssignment(id, assetID, personnelID, time.Now().UTC().Add(-24*time.Hour), nil, "Admin")
	require.NoError(t, err)
	return a
}

func storedPersonnel(t *testing.T, baseID uint) *user.User {
	t.Helper()
	u, err := user.NewUser("Pvt. Iqbal", "iqbal@base.mil", "hash", authorization.RoleLogisticsOfficer, &baseID)
	require.NoError(t, err)
	return u
}

func TestAssignAssetUseCase_Execute_Success(t *testing.T) {
	unit := storedUnit(t, 9, 2, asset.StatusAvailable)
	var savedAsset *asset.Asset
	assetRepo := &mockAssetRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*asset.Asset, error) {
			return unit, nil
		},
		UpdateFunc: func(ctx context.Context, a *asset.Asset) error {
			savedAsset = a
			return nil
		},
	}
	assignmentRepo := &mockAssignmentRepository{
		CreateFunc: func(ctx context.Context, a *assignment.Assignment) error {
			return a.SetID(55)
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return storedPersonnel(t, 2), nil
		},
	}

	uc := NewAssignAssetUseCase(assignmentRepo, assetRepo, userRepo, &mockTxManager{}, testGate(t), testLogger())
	result, err := uc.Execute(context.Background(), AssignAssetCommand{
		Identity:    commanderIdentity(2),
		AssetID:     9,
		PersonnelID: 4,
		AssignedBy:  "Cmdr. Oseke",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(55), result.ID)
	assert.Nil(t, result.ExpendedDate)
	require.NotNil(t, savedAsset)
	assert.Equal(t, asset.StatusAssigned, savedAsset.Status())
}

func TestAssignAssetUseCase_Execute_AlreadyAssigned(t *testing.T) {
	assetRepo := &mockAssetRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*asset.Asset, error) {
			return storedUnit(t, id, 2, asset.StatusAvailable), nil
		},
	}
	assignmentRepo := &mockAssignmentRepository{
		GetActiveByAssetIDFunc: func(ctx context.Context, assetID uint) (*assignment.Assignment, error) {
			return storedAssignment(t, 50, assetID, 8), nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return storedPersonnel(t, 2), nil
		},
	}

	uc := NewAssignAssetUseCase(assignmentRepo, assetRepo, userRepo, &mockTxManager{}, testGate(t), testLogger())
	_, err := uc.Execute(context.Background(), AssignAssetCommand{
		Identity:    adminIdentity(),
		AssetID:     9,
		PersonnelID: 4,
	})

	require.Error(t, err)
	appErr := sharedErrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Asset is already assigned", appErr.Message)
}

func TestAssignAssetUseCase_Execute_UnavailableAsset(t *testing.T) {
	assetRepo := &mockAssetRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*asset.Asset, error) {
			return storedUnit(t, id, 2, asset.StatusMaintenance), nil
		},
	}

	uc := NewAssignAssetUseCase(&mockAssignmentRepository{}, assetRepo, &mockUserRepository{}, &mockTxManager{}, testGate(t), testLogger())
	_, err := uc.Execute(context.Background(), AssignAssetCommand{
		Identity:    adminIdentity(),
		AssetID:     9,
		PersonnelID: 4,
	})

	require.Error(t, err)
	appErr := sharedErrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Asset is not available for assignment", appErr.Message)
}

func TestAssignAssetUseCase_Execute_UnknownPersonnel(t *testing.T) {
	assetRepo := &mockAssetRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*asset.Asset, error) {
			return storedUnit(t, id, 2, asset.StatusAvailable), nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, sharedErrors.NewNotFoundError("User not found")
		},
	}

	uc := NewAssignAssetUseCase(&mockAssignmentRepository{}, assetRepo, userRepo, &mockTxManager{}, testGate(t), testLogger())
	_, err := uc.Execute(context.Background(), AssignAssetCommand{
		Identity:    adminIdentity(),
		AssetID:     9,
		PersonnelID: 999,
	})

	require.Error(t, err)
	appErr := sharedErrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Personnel not found", appErr.Message)
}

func TestAssignAssetUseCase_Execute_OfficerAssignsAtAnyBase(t *testing.T) {
	assetRepo := &mockAssetRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*asset.Asset, error) {
			return storedUnit(t, id, 3, asset.StatusAvailable), nil
		},
	}
	assignmentRepo := &mockAssignmentRepository{
		CreateFunc: func(ctx context.Context, a *assignment.Assignment) error {
			return a.SetID(56)
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return storedPersonnel(t, 3), nil
		},
	}

	uc := NewAssignAssetUseCase(assignmentRepo, assetRepo, userRepo, &mockTxManager{}, testGate(t), testLogger())

	// A logistics officer may issue equipment at other bases.
	_, err := uc.Execute(context.Background(), AssignAssetCommand{
		Identity:    officerIdentity(2),
		AssetID:     9,
		PersonnelID: 4,
	})
	require.NoError(t, err)

	// A base commander may not.
	_, err = uc.Execute(context.Background(), AssignAssetCommand{
		Identity:    commanderIdentity(2),
		AssetID:     9,
		PersonnelID: 4,
	})
	require.Error(t, err)
	appErr := sharedErrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Access denied", appErr.Message)
}

func TestExpendAssetUseCase_Execute_ReleasesAsset(t *testing.T) {
	unit := storedUnit(t, 9, 2, asset.StatusAssigned)
	active := storedAssignment(t, 55, 9, 4)
	var savedAsset *asset.Asset
	var savedAssignment *assignment.Assignment

	assignmentRepo := &mockAssignmentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*assignment.Assignment, error) {
			return active, nil
		},
		UpdateFunc: func(ctx context.Context, a *assignment.Assignment) error {
			savedAssignment = a
			return nil
		},
	}
	assetRepo := &mockAssetRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*asset.Asset, error) {
			return unit, nil
		},
		UpdateFunc: func(ctx context.Context, a *asset.Asset) error {
			savedAsset = a
			return nil
		},
	}

	uc := NewExpendAssetUseCase(assignmentRepo, assetRepo, &mockTxManager{}, testGate(t), testLogger())
	result, err := uc.Execute(context.Background(), ExpendAssetCommand{
		Identity:     commanderIdentity(2),
		AssignmentID: 55,
	})

	require.NoError(t, err)
	require.NotNil(t, result.ExpendedDate)
	require.NotNil(t, savedAssignment)
	assert.False(t, savedAssignment.Active())
	require.NotNil(t, savedAsset)
	assert.Equal(t, asset.StatusAvailable, savedAsset.Status())
}

func TestExpendAssetUseCase_Execute_AlreadyExpended(t *testing.T) {
	expended := time.Now().UTC().Add(-time.Hour)
	closed, err := assignment.ReconstructAssignment(55, 9, 4, time.Now().UTC().Add(-48*time.Hour), &expended, "Admin")
	require.NoError(t, err)

	assignmentRepo := &mockAssignmentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*assignment.Assignment, error) {
			return closed, nil
		},
	}
	assetRepo := &mockAssetRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*asset.Asset, error) {
			return storedUnit(t, id, 2, asset.StatusAvailable), nil
		},
	}

	uc := NewExpendAssetUseCase(assignmentRepo, assetRepo, &mockTxManager{}, testGate(t), testLogger())
	_, err = uc.Execute(context.Background(), ExpendAssetCommand{
		Identity:     adminIdentity(),
		AssignmentID: 55,
	})

	require.Error(t, err)
	appErr := sharedErrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Asset is already marked as expended", appErr.Message)
}

func TestUpdateAssignmentUseCase_Execute_AdminOnly(t *testing.T) {
	assignmentRepo := &mockAssignmentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*assignment.Assignment, error) {
			return storedAssignment(t, 55, 9, 4), nil
		},
	}
	assetRepo := &mockAssetRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*asset.Asset, error) {
			return storedUnit(t, id, 2, asset.StatusAssigned), nil
		},
	}

	uc := NewUpdateAssignmentUseCase(assignmentRepo, assetRepo, testGate(t), testLogger())

	_, err := uc.Execute(context.Background(), UpdateAssignmentCommand{
		Identity:     commanderIdentity(2),
		AssignmentID: 55,
	})
	require.Error(t, err)
	appErr := sharedErrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Only admin can update assignments", appErr.Message)

	newPersonnel := uint(6)
	result, err := uc.Execute(context.Background(), UpdateAssignmentCommand{
		Identity:     adminIdentity(),
		AssignmentID: 55,
		Update:       assignment.Update{PersonnelID: &newPersonnel},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(6), result.PersonnelID)
}

func TestDeleteAssignmentUseCase_Execute_AdminOnly(t *testing.T) {
	repo := &mockAssignmentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*assignment.Assignment, error) {
			return storedAssignment(t, 55, 9, 4), nil
		},
	}

	uc := NewDeleteAssignmentUseCase(repo, testLogger())

	err := uc.Execute(context.Background(), DeleteAssignmentCommand{Identity: officerIdentity(2), AssignmentID: 55})
	require.Error(t, err)
	appErr := sharedErrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Only admin can delete assignments", appErr.Message)

	require.NoError(t, uc.Execute(context.Background(), DeleteAssignmentCommand{Identity: adminIdentity(), AssignmentID: 55}))
}

func TestListAssignmentsUseCase_Execute_ScopesNonAdmins(t *testing.T) {
	repo := &mockAssignmentRepository{
		ListFunc: func(ctx context.Context, filter assignment.Filter) ([]*assignment.Assignment, int64, error) {
			require.NotNil(t, filter.BaseID)
			assert.Equal(t, uint(2), *filter.BaseID)
			assert.Equal(t, assignment.StatusActive, filter.Status)
			return []*assignment.Assignment{storedAssignment(t, 55, 9, 4)}, 1, nil
		},
	}

	uc := NewListAssignmentsUseCase(repo, testLogger())
	result, err := uc.Execute(context.Background(), ListAssignmentsQuery{
		Identity: commanderIdentity(2),
		Status:   "active",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Assignments, 1)
	assert.Nil(t, result.Assignments[0].ExpendedDate)
}

func TestPersonnelAssignmentsUseCase_Execute(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return storedPersonnel(t, 2), nil
		},
	}
	repo := &mockAssignmentRepository{
		ListByPersonnelFunc: func(ctx context.Context, personnelID uint) ([]*assignment.Assignment, error) {
			return []*assignment.Assignment{storedAssignment(t, 55, 9, personnelID)}, nil
		},
	}

	uc := NewPersonnelAssignmentsUseCase(repo, userRepo, testGate(t), testLogger())
	items, err := uc.Execute(context.Background(), PersonnelAssignmentsQuery{Identity: commanderIdentity(2), PersonnelID: 4})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(9), items[0].AssetID)
}
