// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	subject := "Reset your password - Coliving Manager"

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"reset_url":  input.ResetURL,
		"expires_in": input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue password reset email",
			err,
		)
	}

	return nil
}

// QueueRentReminderEmail queues a rent due reminder for a tenant. Reminders
// carry a dedupe key so a rerun sweep does not queue the same one twice.
func (s *Service) QueueRentReminderEmail(ctx context.Context, input adapter.QueueRentReminderInput) error {
	already, err := s.alreadyQueued(ctx, input.DedupeKey)
	if err != nil {
		return err
	}
	if already {
		return nil
	}

	subject := fmt.Sprintf("Rent due %s - %s", input.DueDate, input.PropertyName)

	templateData := map[string]interface{}{
		"tenant_name":   input.TenantName,
		"property_name": input.PropertyName,
		"room_name":     input.RoomName,
		"amount":        input.Amount,
		"due_date":      input.DueDate,
	}

	job := entity.NewEmailJob(
		entity.TemplateRentReminder,
		input.TenantEmail,
		input.TenantName,
		subject,
		templateData,
	)
	job.DedupeKey = input.DedupeKey

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue rent reminder email",
			err,
		)
	}

	return nil
}

// QueueLeaseExpiryEmail queues a lease expiry notice for the landlord.
func (s *Service) QueueLeaseExpiryEmail(ctx context.Context, input adapter.QueueLeaseExpiryInput) error {
	already, err := s.alreadyQueued(ctx, input.DedupeKey)
	if err != nil {
		return err
	}
	if already {
		return nil
	}

	subject := fmt.Sprintf("Lease ending %s - %s", input.EndDate, input.PropertyName)

	templateData := map[string]interface{}{
		"user_name":     input.UserName,
		"tenant_name":   input.TenantName,
		"property_name": input.PropertyName,
		"room_name":     input.RoomName,
		"end_date":      input.EndDate,
	}

	job := entity.NewEmailJob(
		entity.TemplateLeaseExpiry,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)
	job.DedupeKey = input.DedupeKey

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue lease expiry email",
			err,
		)
	}

	return nil
}

// QueuePaymentReceiptEmail queues a payment receipt for a tenant.
func (s *Service) QueuePaymentReceiptEmail(ctx context.Context, input adapter.QueuePaymentReceiptInput) error {
	subject := fmt.Sprintf("Payment receipt - %s", input.PropertyName)

	templateData := map[string]interface{}{
		"tenant_name":   input.TenantName,
		"property_name": input.PropertyName,
		"amount":        input.Amount,
		"payment_date":  input.PaymentDate,
		"method":        input.Method,
		"reference":     input.Reference,
	}

	job := entity.NewEmailJob(
		entity.TemplatePaymentReceipt,
		input.TenantEmail,
		input.TenantName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue payment receipt email",
			err,
		)
	}

	return nil
}

// alreadyQueued checks the dedupe key, treating an empty key as never queued.
func (s *Service) alreadyQueued(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, nil
	}
	exists, err := s.queue.ExistsByDedupeKey(ctx, key)
	if err != nil {
		return false, domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to check email dedupe key",
			err,
		)
	}
	return exists, nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
