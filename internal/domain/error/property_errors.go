// Package error defines domain-specific errors for the coliving manager application.
package error

import "errors"

// Property domain errors.
var (
	// ErrPropertyNotFound is returned when a property is not found in the system.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrNotAuthorizedToModifyProperty is returned when user is not authorized to modify a property.
	ErrNotAuthorizedToModifyProperty = errors.New("not authorized to modify property")

	// ErrPropertyNameRequired is returned when the property name is empty.
	ErrPropertyNameRequired = errors.New("property name is required")

	// ErrInvalidPurchaseData is returned when land value exceeds purchase price.
	ErrInvalidPurchaseData = errors.New("land value must not exceed purchase price")

	// ErrRoomNotFound is returned when a room is not found in the system.
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomNameRequired is returned when the room name is empty.
	ErrRoomNameRequired = errors.New("room name is required")

	// ErrInvalidMonthlyRent is returned when the monthly rent is negative.
	ErrInvalidMonthlyRent = errors.New("monthly rent must not be negative")

	// ErrRoomNotAvailable is returned when a lease targets an occupied room.
	ErrRoomNotAvailable = errors.New("room is not available")
)

// PropertyErrorCode defines error codes for property errors.
// Format: PRP-XXYYYY where XX is category and YYYY is specific error.
type PropertyErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodePropertyNotFound      PropertyErrorCode = "PRP-010001"
	ErrCodeNotAuthorizedProperty PropertyErrorCode = "PRP-010002"
	ErrCodePropertyNameRequired  PropertyErrorCode = "PRP-010003"
	ErrCodeInvalidPurchaseData   PropertyErrorCode = "PRP-010004"
	ErrCodeRoomNotFound          PropertyErrorCode = "PRP-010005"
	ErrCodeRoomNameRequired      PropertyErrorCode = "PRP-010006"
	ErrCodeInvalidMonthlyRent    PropertyErrorCode = "PRP-010007"
	ErrCodeRoomNotAvailable      PropertyErrorCode = "PRP-010008"

	// Internal errors (99XXXX)
	ErrCodePropertyInternalError PropertyErrorCode = "PRP-990001"
)

// PropertyError represents a property error with code and message.
type PropertyError struct {
	Code    PropertyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PropertyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PropertyError) Unwrap() error {
	return e.Err
}

// NewPropertyError creates a new PropertyError with the given code and message.
func NewPropertyError(code PropertyErrorCode, message string, err error) *PropertyError {
	return &PropertyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
