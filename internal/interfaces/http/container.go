// Package http wires the application together behind a gin engine: every
// repository, usecase, handler, and middleware is constructed here.
package http

import (
	"gorm.io/gorm"

	assetusecases "garrison/internal/application/asset/usecases"
	assignmentusecases "garrison/internal/application/assignment/usecases"
	auditusecases "garrison/internal/application/audit/usecases"
	authusecases "garrison/internal/application/auth/usecases"
	baseusecases "garrison/internal/application/base/usecases"
	dashboardusecases "garrison/internal/application/dashboard/usecases"
	purchaseusecases "garrison/internal/application/purchase/usecases"
	transferusecases "garrison/internal/application/transfer/usecases"
	"garrison/internal/infrastructure/auth"
	"garrison/internal/infrastructure/config"
	"garrison/internal/infrastructure/permission"
	"garrison/internal/infrastructure/repository"
	"garrison/internal/interfaces/http/handlers"
	"garrison/internal/interfaces/http/middleware"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/db"
	"garrison/internal/shared/logger"
)

// Container holds the fully wired handler and middleware set.
type Container struct {
	AuthHandler       *handlers.AuthHandler
	AssetHandler      *handlers.AssetHandler
	PurchaseHandler   *handlers.PurchaseHandler
	TransferHandler   *handlers.TransferHandler
	AssignmentHandler *handlers.AssignmentHandler
	DashboardHandler  *handlers.DashboardHandler
	AuditHandler      *handlers.AuditHandler
	BaseHandler       *handlers.BaseHandler

	AuthMiddleware  *middleware.AuthMiddleware
	AuditMiddleware *middleware.AuditMiddleware
}

// NewContainer builds the dependency graph from the database connection out.
func NewContainer(cfg *config.Config, conn *gorm.DB, log logger.Interface) (*Container, error) {
	// repositories
	userRepo := repository.NewUserRepository(conn)
	baseRepo := repository.NewBaseRepository(conn)
	assetRepo := repository.NewAssetRepository(conn)
	purchaseRepo := repository.NewPurchaseRepository(conn)
	transferRepo := repository.NewTransferRepository(conn)
	assignmentRepo := repository.NewAssignmentRepository(conn)
	auditRepo := repository.NewLogRepository(conn)
	ledgerRepo := repository.NewLedgerRepository(conn)
	txManager := db.NewTransactionManager(conn)

	// services
	enforcer, err := permission.NewEnforcer(log)
	if err != nil {
		return nil, err
	}
	gate := authorization.NewGate(enforcer)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpiresInHours)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	// auth
	authHandler := handlers.NewAuthHandler(
		authusecases.NewRegisterUseCase(userRepo, hasher, jwtService, log),
		authusecases.NewLoginUseCase(userRepo, hasher, jwtService, log),
		authusecases.NewGetProfileUseCase(userRepo, log),
		authusecases.NewUpdateProfileUseCase(userRepo, hasher, log),
		authusecases.NewListUsersUseCase(userRepo, log),
		log,
	)

	// assets
	assetHandler := handlers.NewAssetHandler(
		assetusecases.NewCreateAssetUseCase(assetRepo, gate, log),
		assetusecases.NewGetAssetUseCase(assetRepo, gate, log),
		assetusecases.NewUpdateAssetUseCase(assetRepo, gate, log),
		assetusecases.NewDeleteAssetUseCase(assetRepo, gate, log),
		assetusecases.NewListAssetsUseCase(assetRepo, assignmentRepo, userRepo, log),
		log,
	)

	// purchases
	purchaseHandler := handlers.NewPurchaseHandler(
		purchaseusecases.NewCreatePurchaseUseCase(purchaseRepo, assetRepo, txManager, gate, log),
		purchaseusecases.NewGetPurchaseUseCase(purchaseRepo, gate, log),
		purchaseusecases.NewUpdatePurchaseUseCase(purchaseRepo, gate, log),
		purchaseusecases.NewDeletePurchaseUseCase(purchaseRepo, gate, log),
		purchaseusecases.NewListPurchasesUseCase(purchaseRepo, log),
		log,
	)

	// transfers
	transferHandler := handlers.NewTransferHandler(
		transferusecases.NewCreateTransferUseCase(transferRepo, assetRepo, txManager, gate, log),
		transferusecases.NewGetTransferUseCase(transferRepo, log),
		transferusecases.NewUpdateTransferUseCase(transferRepo, gate, log),
		transferusecases.NewDeleteTransferUseCase(transferRepo, log),
		transferusecases.NewListTransfersUseCase(transferRepo, log),
		transferusecases.NewAssetTransferHistoryUseCase(transferRepo, assetRepo, gate, log),
		log,
	)

	// assignments
	assignmentHandler := handlers.NewAssignmentHandler(
		assignmentusecases.NewAssignAssetUseCase(assignmentRepo, assetRepo, userRepo, txManager, gate, log),
		assignmentusecases.NewExpendAssetUseCase(assignmentRepo, assetRepo, txManager, gate, log),
		assignmentusecases.NewGetAssignmentUseCase(assignmentRepo, assetRepo, gate, log),
		assignmentusecases.NewUpdateAssignmentUseCase(assignmentRepo, assetRepo, gate, log),
		assignmentusecases.NewDeleteAssignmentUseCase(assignmentRepo, log),
		assignmentusecases.NewListAssignmentsUseCase(assignmentRepo, log),
		assignmentusecases.NewAssetAssignmentsUseCase(assignmentRepo, assetRepo, gate, log),
		assignmentusecases.NewPersonnelAssignmentsUseCase(assignmentRepo, userRepo, gate, log),
		log,
	)

	// dashboard
	dashboardHandler := handlers.NewDashboardHandler(
		dashboardusecases.NewGetMetricsUseCase(ledgerRepo, log),
		dashboardusecases.NewNetMovementUseCase(ledgerRepo, log),
		log,
	)

	// audit and bases
	auditHandler := handlers.NewAuditHandler(auditusecases.NewListLogsUseCase(auditRepo, gate, log), log)
	baseHandler := handlers.NewBaseHandler(baseusecases.NewListBasesUseCase(baseRepo, log), log)

	return &Container{
		AuthHandler:       authHandler,
		AssetHandler:      assetHandler,
		PurchaseHandler:   purchaseHandler,
		TransferHandler:   transferHandler,
		AssignmentHandler: assignmentHandler,
		DashboardHandler:  dashboardHandler,
		AuditHandler:      auditHandler,
		BaseHandler:       baseHandler,
		AuthMiddleware:    middleware.NewAuthMiddleware(jwtService, log),
		AuditMiddleware:   middleware.NewAuditMiddleware(auditRepo, log),
	}, nil
}
