package errors

import "net/http"

// Lifecycle-specific error types for asset state transitions.
const (
	ErrorTypeAssetNotAvailable ErrorType = "asset_not_available"
	ErrorTypeAlreadyAssigned   ErrorType = "already_assigned"
	ErrorTypeAlreadyExpended   ErrorType = "already_expended"
	ErrorTypeInvalidTransfer   ErrorType = "invalid_transfer"
)

// NewAssetNotAvailableError is returned when an operation requires an
// available asset. The message varies by operation; the UI shows it verbatim.
func NewAssetNotAvailableError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeAssetNotAvailable,
		Message: message,
		Code:    http.StatusBadRequest,
	}
}

// NewAlreadyAssignedError is returned when the asset already has an active assignment.
func NewAlreadyAssignedError() *AppError {
	return &AppError{
		Type:    ErrorTypeAlreadyAssigned,
		Message: "Asset is already assigned",
		Code:    http.StatusBadRequest,
	}
}

// NewAlreadyExpendedError is returned when an assignment has already been closed out.
func NewAlreadyExpendedError() *AppError {
	return &AppError{
		Type:    ErrorTypeAlreadyExpended,
		Message: "Asset is already marked as expended",
		Code:    http.StatusBadRequest,
	}
}

// NewInvalidTransferError is returned for transfers that violate routing rules,
// such as a transfer whose origin and destination base are the same.
func NewInvalidTransferError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidTransfer,
		Message: message,
		Code:    http.StatusBadRequest,
	}
}

// NewInvalidCredentialsError is returned for failed logins. The message is
// identical for unknown accounts and wrong passwords so callers cannot
// enumerate registered emails.
func NewInvalidCredentialsError() *AppError {
	return &AppError{
		Type:    ErrorTypeUnauthorized,
		Message: "Invalid credentials",
		Code:    http.StatusUnauthorized,
	}
}
