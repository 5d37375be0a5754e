package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage      = 1
	DefaultPageSize  = 10
	MaxPageSize      = 100
	AuditLogPageSize = 50

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"

	// Context keys
	ContextKeyIdentity = "identity"
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
	ContextKeyBaseID   = "base_id"

	// Record status defaults (free-form strings, kept as the product uses them)
	PurchaseStatusPending  = "Pending"
	TransferStatusProgress = "In Progress"

	// Database table names
	TableBases       = "bases"
	TableUsers       = "users"
	TableAssets      = "assets"
	TablePurchases   = "purchases"
	TableTransfers   = "transfers"
	TableAssignments = "assignments"
	TableLogs        = "logs"

	// AuditSentinelUserID is recorded for unauthenticated hits on the
	// auth endpoints (login/register) so the attempt is still logged.
	AuditSentinelUserID = 1

	// Error messages
	ErrMsgInternalServerError = "Internal server error"
	ErrMsgAuthRequired        = "Authentication required"
	ErrMsgAdminRequired       = "Admin access required"
	ErrMsgAccessDenied        = "Access denied"
	ErrMsgInvalidCredentials  = "Invalid credentials"
)
