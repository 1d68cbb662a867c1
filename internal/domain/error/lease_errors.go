// Package error defines domain-specific errors for the coliving manager application.
package error

import "errors"

// Lease domain errors.
var (
	// ErrLeaseNotFound is returned when a lease is not found in the system.
	ErrLeaseNotFound = errors.New("lease not found")

	// ErrInvalidLeasePeriod is returned when the lease end date is not after the start date.
	ErrInvalidLeasePeriod = errors.New("lease end date must be after start date")

	// ErrInvalidRentDueDay is returned when the rent due day is outside 1-28.
	ErrInvalidRentDueDay = errors.New("rent due day must be between 1 and 28")

	// ErrLeaseNotActive is returned when an operation requires an active lease.
	ErrLeaseNotActive = errors.New("lease is not active")
)

// LeaseErrorCode defines error codes for lease errors.
// Format: LSE-XXYYYY where XX is category and YYYY is specific error.
type LeaseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeLeaseNotFound      LeaseErrorCode = "LSE-010001"
	ErrCodeInvalidLeasePeriod LeaseErrorCode = "LSE-010002"
	ErrCodeInvalidRentDueDay  LeaseErrorCode = "LSE-010003"
	ErrCodeLeaseNotActive     LeaseErrorCode = "LSE-010004"

	// Internal errors (99XXXX)
	ErrCodeLeaseInternalError LeaseErrorCode = "LSE-990001"
)

// LeaseError represents a lease error with code and message.
type LeaseError struct {
	Code    LeaseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LeaseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LeaseError) Unwrap() error {
	return e.Err
}

// NewLeaseError creates a new LeaseError with the given code and message.
func NewLeaseError(code LeaseErrorCode, message string, err error) *LeaseError {
	return &LeaseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
