// Package error defines domain-specific errors for the coliving manager application.
package error

import "errors"

// Payment domain errors.
var (
	// ErrPaymentNotFound is returned when a payment is not found in the system.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrInvalidPaymentType is returned when the payment type is invalid.
	ErrInvalidPaymentType = errors.New("invalid payment type")

	// ErrInvalidPaymentStatus is returned when the payment status is invalid.
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	// ErrInvalidPaymentMethod is returned when the payment method is invalid.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidPaymentAmount is returned when the payment amount is not positive.
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")

	// ErrInvalidStatusTransition is returned for a disallowed status change.
	ErrInvalidStatusTransition = errors.New("invalid payment status transition")
)

// PaymentErrorCode defines error codes for payment errors.
// Format: PAY-XXYYYY where XX is category and YYYY is specific error.
type PaymentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodePaymentNotFound         PaymentErrorCode = "PAY-010001"
	ErrCodeInvalidPaymentType      PaymentErrorCode = "PAY-010002"
	ErrCodeInvalidPaymentStatus    PaymentErrorCode = "PAY-010003"
	ErrCodeInvalidPaymentMethod    PaymentErrorCode = "PAY-010004"
	ErrCodeInvalidPaymentAmount    PaymentErrorCode = "PAY-010005"
	ErrCodeInvalidStatusTransition PaymentErrorCode = "PAY-010006"

	// Internal errors (99XXXX)
	ErrCodePaymentInternalError PaymentErrorCode = "PAY-990001"
)

// PaymentError represents a payment error with code and message.
type PaymentError struct {
	Code    PaymentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PaymentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// NewPaymentError creates a new PaymentError with the given code and message.
func NewPaymentError(code PaymentErrorCode, message string, err error) *PaymentError {
	return &PaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
