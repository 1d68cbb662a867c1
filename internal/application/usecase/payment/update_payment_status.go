package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
)

// UpdatePaymentStatusInput represents the input for a payment status change.
type UpdatePaymentStatusInput struct {
	UserID    uuid.UUID
	PaymentID uuid.UUID
	Status    entity.PaymentStatus
}

// UpdatePaymentStatusOutput represents the output of a payment status change.
type UpdatePaymentStatusOutput struct {
	Payment *entity.Payment
}

// UpdatePaymentStatusUseCase handles payment status transitions.
type UpdatePaymentStatusUseCase struct {
	paymentRepo  adapter.PaymentRepository
	propertyRepo adapter.PropertyRepository
	tenantRepo   adapter.TenantRepository
	emailService adapter.EmailService
}

// NewUpdatePaymentStatusUseCase creates a new UpdatePaymentStatusUseCase instance.
func NewUpdatePaymentStatusUseCase(
	paymentRepo adapter.PaymentRepository,
	propertyRepo adapter.PropertyRepository,
	tenantRepo adapter.TenantRepository,
	emailService adapter.EmailService,
) *UpdatePaymentStatusUseCase {
	return &UpdatePaymentStatusUseCase{
		paymentRepo:  paymentRepo,
		propertyRepo: propertyRepo,
		tenantRepo:   tenantRepo,
		emailService: emailService,
	}
}

// Execute moves a payment to the target status. Allowed transitions are
// pending to completed or failed, and completed to refunded. A receipt
// email is queued when a pending payment completes.
func (uc *UpdatePaymentStatusUseCase) Execute(ctx context.Context, input UpdatePaymentStatusInput) (*UpdatePaymentStatusOutput, error) {
	payment, err := uc.paymentRepo.FindByID(ctx, input.PaymentID)
	if err != nil || payment == nil || payment.UserID != input.UserID {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodePaymentNotFound,
			"payment not found",
			domainerror.ErrPaymentNotFound,
		)
	}

	switch input.Status {
	case entity.PaymentStatusPending, entity.PaymentStatusCompleted, entity.PaymentStatusFailed, entity.PaymentStatusRefunded:
	default:
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentStatus,
			"invalid payment status",
			domainerror.ErrInvalidPaymentStatus,
		)
	}

	if !payment.CanTransitionTo(input.Status) {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidStatusTransition,
			fmt.Sprintf("cannot move payment from %s to %s", payment.Status, input.Status),
			domainerror.ErrInvalidStatusTransition,
		)
	}

	payment.Status = input.Status
	payment.UpdatedAt = time.Now().UTC()
	if err := uc.paymentRepo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}

	if input.Status == entity.PaymentStatusCompleted {
		uc.queueReceipt(ctx, payment)
	}

	return &UpdatePaymentStatusOutput{Payment: payment}, nil
}

// queueReceipt queues a receipt email for the payment, best effort.
func (uc *UpdatePaymentStatusUseCase) queueReceipt(ctx context.Context, payment *entity.Payment) {
	if payment.TenantID == nil {
		return
	}
	tenant, err := uc.tenantRepo.FindByID(ctx, *payment.TenantID)
	if err != nil || tenant == nil || tenant.Email == "" {
		return
	}
	property, err := uc.propertyRepo.FindByID(ctx, payment.PropertyID)
	if err != nil || property == nil {
		return
	}

	err = uc.emailService.QueuePaymentReceiptEmail(ctx, adapter.QueuePaymentReceiptInput{
		TenantEmail:  tenant.Email,
		TenantName:   tenant.FullName,
		PropertyName: property.Name,
		Amount:       payment.Amount.StringFixed(2),
		PaymentDate:  payment.Date.Format("2006-01-02"),
		Method:       string(payment.Method),
		Reference:    payment.ID.String(),
	})
	if err != nil {
		slog.Warn("failed to queue payment receipt email",
			"payment_id", payment.ID,
			"error", err,
		)
	}
}
