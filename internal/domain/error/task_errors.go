// Package error defines domain-specific errors for the coliving manager application.
package error

import "errors"

// Task domain errors.
var (
	// ErrTaskNotFound is returned when a task is not found in the system.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskTitleRequired is returned when the task title is empty.
	ErrTaskTitleRequired = errors.New("task title is required")

	// ErrInvalidTaskPriority is returned when the task priority is invalid.
	ErrInvalidTaskPriority = errors.New("task priority must be: high, medium, or low")

	// ErrInvalidTaskStatus is returned when the task status is invalid.
	ErrInvalidTaskStatus = errors.New("task status must be: open, in_progress, or done")
)

// TaskErrorCode defines error codes for task errors.
// Format: TSK-XXYYYY where XX is category and YYYY is specific error.
type TaskErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTaskNotFound        TaskErrorCode = "TSK-010001"
	ErrCodeTaskTitleRequired   TaskErrorCode = "TSK-010002"
	ErrCodeInvalidTaskPriority TaskErrorCode = "TSK-010003"
	ErrCodeInvalidTaskStatus   TaskErrorCode = "TSK-010004"

	// Internal errors (99XXXX)
	ErrCodeTaskInternalError TaskErrorCode = "TSK-990001"
)

// TaskError represents a task error with code and message.
type TaskError struct {
	Code    TaskErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TaskError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TaskError) Unwrap() error {
	return e.Err
}

// NewTaskError creates a new TaskError with the given code and message.
func NewTaskError(code TaskErrorCode, message string, err error) *TaskError {
	return &TaskError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
