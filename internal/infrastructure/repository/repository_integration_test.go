package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"garrison/internal/domain/asset"
	"garrison/internal/domain/assignment"
	"garrison/internal/domain/audit"
	"garrison/internal/domain/dashboard"
	"garrison/internal/domain/purchase"
	"garrison/internal/domain/transfer"
	"garrison/internal/domain/user"
	"garrison/internal/infrastructure/persistence/models"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/db"
	sharedErrors "garrison/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.BaseModel{},
		&models.UserModel{},
		&models.AssetModel{},
		&models.PurchaseModel{},
		&models.TransferModel{},
		&models.AssignmentModel{},
		&models.LogModel{},
	)
	require.NoError(t, err)

	return database
}

func createTestAsset(t *testing.T, repo *AssetRepository, serial string, baseID uint) *asset.Asset {
	t.Helper()
	a, err := asset.NewAsset("Rifle", "weapon", "standard issue", serial, baseID, asset.StatusAvailable, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), a))
	return a
}

func TestAssetRepository_CreateAndGet(t *testing.T) {
	database := setupTestDB(t)
	repo := NewAssetRepository(database)
	ctx := context.Background()

	a := createTestAsset(t, repo, "WEAPON-1000-1", 1)
	assert.NotZero(t, a.ID())

	found, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, "WEAPON-1000-1", found.SerialNumber())
	assert.Equal(t, asset.StatusAvailable, found.Status())

	_, err = repo.GetByID(ctx, 999)
	require.Error(t, err)
	assert.True(t, sharedErrors.IsNotFoundError(err))
}

func TestAssetRepository_DuplicateSerialFails(t *testing.T) {
	database := setupTestDB(t)
	repo := NewAssetRepository(database)

	createTestAsset(t, repo, "WEAPON-DUP-1", 1)

	dup, err := asset.NewAsset("Rifle", "weapon", "", "WEAPON-DUP-1", 1, asset.StatusAvailable, nil)
	require.NoError(t, err)
	assert.Error(t, repo.Create(context.Background(), dup))
}

func TestAssetRepository_UpdateAndDelete(t *testing.T) {
	database := setupTestDB(t)
	repo := NewAssetRepository(database)
	ctx := context.Background()

	a := createTestAsset(t, repo, "VEHICLE-1-1", 1)
	require.NoError(t, a.Assign())
	require.NoError(t, repo.Update(ctx, a))

	found, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, asset.StatusAssigned, found.Status())

	require.NoError(t, repo.Delete(ctx, a.ID()))
	err = repo.Delete(ctx, a.ID())
	assert.True(t, sharedErrors.IsNotFoundError(err))
}

func TestAssetRepository_ListFilters(t *testing.T) {
	database := setupTestDB(t)
	repo := NewAssetRepository(database)
	ctx := context.Background()

	createTestAsset(t, repo, "WEAPON-10-1", 1)
	createTestAsset(t, repo, "WEAPON-10-2", 2)
	v, err := asset.NewAsset("Truck", "vehicle", "", "VEHICLE-10-1", 1, asset.StatusMaintenance, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, v))

	baseID := uint(1)
	assets, total, err := repo.List(ctx, asset.Filter{BaseID: &baseID, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, assets, 2)

	assets, total, err = repo.List(ctx, asset.Filter{Type: "vehicle", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, asset.StatusMaintenance, assets[0].Status())

	_, total, err = repo.List(ctx, asset.Filter{Search: "WEAPON-10", Page: 1, Limit: 10}) // matches serials
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestAssignmentRepository_ActiveLookup(t *testing.T) {
	database := setupTestDB(t)
	repo := NewAssignmentRepository(database)
	ctx := context.Background()

	active, err := repo.GetActiveByAssetID(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, active)

	a, err := assignment.NewAssignment(7, 3, time.Now().UTC(), "Sgt. Vance")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, a))

	active, err = repo.GetActiveByAssetID(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, a.ID(), active.ID())

	require.NoError(t, active.Expend(time.Now().UTC()))
	require.NoError(t, repo.Update(ctx, active))

	active, err = repo.GetActiveByAssetID(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestAssignmentRepository_ListByStatusAndBase(t *testing.T) {
	database := setupTestDB(t)
	assetRepo := NewAssetRepository(database)
	repo := NewAssignmentRepository(database)
	ctx := context.Background()

	a1 := createTestAsset(t, assetRepo, "WEAPON-20-1", 1)
	a2 := createTestAsset(t, assetRepo, "WEAPON-20-2", 2)

	open, err := assignment.NewAssignment(a1.ID(), 3, time.Now().UTC(), "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, open))

	closed, err := assignment.NewAssignment(a2.ID(), 4, time.Now().UTC(), "")
	require.NoError(t, err)
	require.NoError(t, closed.Expend(time.Now().UTC()))
	require.NoError(t, repo.Create(ctx, closed))

	_, total, err := repo.List(ctx, assignment.Filter{Status: assignment.StatusActive, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	baseID := uint(2)
	results, total, err := repo.List(ctx, assignment.Filter{BaseID: &baseID, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, a2.ID(), results[0].AssetID())

	byPersonnel, err := repo.ListByPersonnel(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, byPersonnel, 1)
}

func TestTransferRepository_ListScoping(t *testing.T) {
	database := setupTestDB(t)
	repo := NewTransferRepository(database)
	ctx := context.Background()

	t1, err := transfer.NewTransfer(1, 1, 2, 1, time.Now().UTC(), "", "Maj. Cole", "resupply")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, t1))

	t2, err := transfer.NewTransfer(2, 3, 4, 1, time.Now().UTC(), "", "Maj. Cole", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, t2))

	touching := uint(2)
	_, total, err := repo.List(ctx, transfer.Filter{TouchingBaseID: &touching, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	history, err := repo.ListByAsset(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, uint(2), history[0].ToBaseID())
}

func TestPurchaseRepository_RoundTrip(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPurchaseRepository(database)
	ctx := context.Background()

	p, err := purchase.NewPurchase("weapon", 5, 1, time.Now().UTC(), "", "", "Cpt. Reyes")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, p))
	assert.NotZero(t, p.ID())

	found, err := repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, "Pending", found.Status())
	assert.Equal(t, 5, found.Quantity())

	newStatus := "Approved"
	found.ApplyUpdate(purchase.Update{Status: &newStatus})
	require.NoError(t, repo.Update(ctx, found))

	reloaded, err := repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, "Approved", reloaded.Status())

	baseID := uint(1)
	_, total, err := repo.List(ctx, purchase.Filter{BaseID: &baseID, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestUserRepository_EmailLookup(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)
	ctx := context.Background()

	missing, err := repo.GetByEmail(ctx, "nobody@hq.mil")
	require.NoError(t, err)
	assert.Nil(t, missing)

	baseID := uint(1)
	u, err := user.NewUser("Cpt. Reyes", "reyes@base1.mil", "hash", authorization.RoleBaseCommander, &baseID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, u))

	found, err := repo.GetByEmail(ctx, "reyes@base1.mil")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, authorization.RoleBaseCommander, found.Role())
	require.NotNil(t, found.BaseID())
	assert.Equal(t, uint(1), *found.BaseID())
}

func TestLogRepository_ListWithActors(t *testing.T) {
	database := setupTestDB(t)
	logRepo := NewLogRepository(database)
	userRepo := NewUserRepository(database)
	ctx := context.Background()

	admin, err := user.NewUser("System Administrator", "admin@hq.mil", "hash", authorization.RoleAdmin, nil)
	require.NoError(t, err)
	require.NoError(t, userRepo.Create(ctx, admin))

	entry := &audit.Entry{
		UserID: admin.ID(),
		Action: audit.ActionCreatePurchase,
		Details: audit.Details{
			Method:     "POST",
			URL:        "/api/purchases",
			StatusCode: 201,
		},
		Timestamp: time.Now().UTC(),
		IPAddress: "10.0.0.1",
	}
	require.NoError(t, logRepo.Create(ctx, entry))
	assert.NotZero(t, entry.ID)

	entries, total, err := logRepo.List(ctx, audit.Filter{Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, entries, 1)
	assert.Equal(t, audit.ActionCreatePurchase, entries[0].Action)
	assert.Equal(t, "POST", entries[0].Details.Method)
	require.NotNil(t, entries[0].User)
	assert.Equal(t, "admin@hq.mil", entries[0].User.Email)

	action := audit.ActionUserLogin
	_, total, err = logRepo.List(ctx, audit.Filter{Action: action, Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestLedgerRepository_Metrics(t *testing.T) {
	database := setupTestDB(t)
	assetRepo := NewAssetRepository(database)
	purchaseRepo := NewPurchaseRepository(database)
	transferRepo := NewTransferRepository(database)
	assignmentRepo := NewAssignmentRepository(database)
	ledger := NewLedgerRepository(database)
	ctx := context.Background()

	start := time.Now().UTC().Add(-24 * time.Hour)
	end := time.Now().UTC().Add(time.Hour)

	a := createTestAsset(t, assetRepo, "WEAPON-30-1", 1)
	createTestAsset(t, assetRepo, "WEAPON-30-2", 2)

	p, err := purchase.NewPurchase("weapon", 4, 1, time.Now().UTC(), "", "", "")
	require.NoError(t, err)
	require.NoError(t, purchaseRepo.Create(ctx, p))

	in, err := transfer.NewTransfer(a.ID(), 2, 1, 1, time.Now().UTC(), "", "", "")
	require.NoError(t, err)
	require.NoError(t, transferRepo.Create(ctx, in))

	out, err := transfer.NewTransfer(a.ID(), 1, 2, 1, time.Now().UTC(), "", "", "")
	require.NoError(t, err)
	require.NoError(t, transferRepo.Create(ctx, out))

	assigned, err := assignment.NewAssignment(a.ID(), 9, time.Now().UTC(), "")
	require.NoError(t, err)
	require.NoError(t, assignmentRepo.Create(ctx, assigned))

	// A closed assignment must count as expended, never as assigned.
	b := createTestAsset(t, assetRepo, "WEAPON-30-3", 1)
	closedAssignment, err := assignment.NewAssignment(b.ID(), 11, time.Now().UTC(), "")
	require.NoError(t, err)
	require.NoError(t, assignmentRepo.Create(ctx, closedAssignment))
	require.NoError(t, closedAssignment.Expend(time.Now().UTC()))
	require.NoError(t, assignmentRepo.Update(ctx, closedAssignment))

	baseID := uint(1)
	scope := dashboard.Scope{BaseID: &baseID, Start: start, End: end}

	closing, err := ledger.AssetsCreatedOnOrBefore(ctx, scope, end)
	require.NoError(t, err)
	assert.EqualValues(t, 2, closing)

	purchased, err := ledger.PurchasedQuantity(ctx, scope)
	require.NoError(t, err)
	assert.EqualValues(t, 4, purchased)

	transfersIn, err := ledger.TransferredInQuantity(ctx, scope)
	require.NoError(t, err)
	assert.EqualValues(t, 1, transfersIn)

	transfersOut, err := ledger.TransferredOutQuantity(ctx, scope)
	require.NoError(t, err)
	assert.EqualValues(t, 1, transfersOut)

	assignedCount, err := ledger.AssignedCount(ctx, scope)
	require.NoError(t, err)
	assert.EqualValues(t, 1, assignedCount)

	expendedCount, err := ledger.ExpendedCount(ctx, scope)
	require.NoError(t, err)
	assert.EqualValues(t, 1, expendedCount)

	details, err := ledger.PurchaseDetails(ctx, scope)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, 4, details[0].Quantity)
}

func TestLedgerRepository_ClosingBalanceIncludesPeriodEnd(t *testing.T) {
	database := setupTestDB(t)
	assetRepo := NewAssetRepository(database)
	ledger := NewLedgerRepository(database)
	ctx := context.Background()

	a := createTestAsset(t, assetRepo, "WEAPON-31-1", 1)
	stored, err := assetRepo.GetByID(ctx, a.ID())
	require.NoError(t, err)

	// A period ending exactly at the asset's creation instant still owns it.
	cutoff := stored.CreatedAt()
	scope := dashboard.Scope{Start: time.Unix(0, 0).UTC(), End: cutoff}

	closing, err := ledger.AssetsCreatedOnOrBefore(ctx, scope, cutoff)
	require.NoError(t, err)
	assert.EqualValues(t, 1, closing)

	opening, err := ledger.AssetsCreatedBefore(ctx, scope, cutoff)
	require.NoError(t, err)
	assert.Zero(t, opening)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	database := setupTestDB(t)
	assetRepo := NewAssetRepository(database)
	tm := db.NewTransactionManager(database)
	ctx := context.Background()

	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := asset.NewAsset("Rifle", "weapon", "", "WEAPON-TX-1", 1, asset.StatusAvailable, nil)
		require.NoError(t, err)
		if err := assetRepo.Create(txCtx, a); err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)

	_, total, err := assetRepo.List(ctx, asset.Filter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
}
