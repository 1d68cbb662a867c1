// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueuePasswordResetEmail queues a password reset email.
	QueuePasswordResetEmail(ctx context.Context, input QueuePasswordResetInput) error

	// QueueRentReminderEmail queues a rent due reminder for a tenant.
	QueueRentReminderEmail(ctx context.Context, input QueueRentReminderInput) error

	// QueueLeaseExpiryEmail queues a lease expiry notice for the landlord.
	QueueLeaseExpiryEmail(ctx context.Context, input QueueLeaseExpiryInput) error

	// QueuePaymentReceiptEmail queues a payment receipt for a tenant.
	QueuePaymentReceiptEmail(ctx context.Context, input QueuePaymentReceiptInput) error
}

// QueuePasswordResetInput represents the input for queueing a password reset email.
type QueuePasswordResetInput struct {
	UserID    string
	UserEmail string
	UserName  string
	ResetURL  string
	ExpiresIn string
}

// QueueRentReminderInput represents the input for queueing a rent reminder email.
type QueueRentReminderInput struct {
	TenantEmail  string
	TenantName   string
	PropertyName string
	RoomName     string
	Amount       string
	DueDate      string
	DedupeKey    string
}

// QueueLeaseExpiryInput represents the input for queueing a lease expiry email.
type QueueLeaseExpiryInput struct {
	UserEmail    string
	UserName     string
	TenantName   string
	PropertyName string
	RoomName     string
	EndDate      string
	DedupeKey    string
}

// QueuePaymentReceiptInput represents the input for queueing a payment receipt email.
type QueuePaymentReceiptInput struct {
	TenantEmail  string
	TenantName   string
	PropertyName string
	Amount       string
	PaymentDate  string
	Method       string
	Reference    string
}
