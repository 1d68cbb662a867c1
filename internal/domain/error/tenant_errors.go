// Package error defines domain-specific errors for the coliving manager application.
package error

import "errors"

// Tenant domain errors.
var (
	// ErrTenantNotFound is returned when a tenant is not found in the system.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrTenantNameRequired is returned when the tenant full name is empty.
	ErrTenantNameRequired = errors.New("tenant full name is required")

	// ErrTenantEmailInvalid is returned when the tenant email is malformed.
	ErrTenantEmailInvalid = errors.New("tenant email is invalid")

	// ErrTenantAlreadyArchived is returned when archiving an inactive tenant.
	ErrTenantAlreadyArchived = errors.New("tenant is already archived")
)

// TenantErrorCode defines error codes for tenant errors.
// Format: TNT-XXYYYY where XX is category and YYYY is specific error.
type TenantErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTenantNotFound        TenantErrorCode = "TNT-010001"
	ErrCodeTenantNameRequired    TenantErrorCode = "TNT-010002"
	ErrCodeTenantEmailInvalid    TenantErrorCode = "TNT-010003"
	ErrCodeTenantAlreadyArchived TenantErrorCode = "TNT-010004"

	// Internal errors (99XXXX)
	ErrCodeTenantInternalError TenantErrorCode = "TNT-990001"
)

// TenantError represents a tenant error with code and message.
type TenantError struct {
	Code    TenantErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TenantError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TenantError) Unwrap() error {
	return e.Err
}

// NewTenantError creates a new TenantError with the given code and message.
func NewTenantError(code TenantErrorCode, message string, err error) *TenantError {
	return &TenantError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
