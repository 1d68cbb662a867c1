// Package payment contains payment tracking use cases.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
)

// RecordPaymentInput represents the input for recording a payment.
type RecordPaymentInput struct {
	UserID      uuid.UUID
	PropertyID  uuid.UUID
	TenantID    *uuid.UUID
	LeaseID     *uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Type        entity.PaymentType
	Status      entity.PaymentStatus
	Method      entity.PaymentMethod
	Description string
}

// RecordPaymentOutput represents the output of recording a payment.
type RecordPaymentOutput struct {
	Payment *entity.Payment
}

// RecordPaymentUseCase handles payment recording logic.
type RecordPaymentUseCase struct {
	paymentRepo  adapter.PaymentRepository
	propertyRepo adapter.PropertyRepository
	tenantRepo   adapter.TenantRepository
	emailService adapter.EmailService
}

// NewRecordPaymentUseCase creates a new RecordPaymentUseCase instance.
func NewRecordPaymentUseCase(
	paymentRepo adapter.PaymentRepository,
	propertyRepo adapter.PropertyRepository,
	tenantRepo adapter.TenantRepository,
	emailService adapter.EmailService,
) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		paymentRepo:  paymentRepo,
		propertyRepo: propertyRepo,
		tenantRepo:   tenantRepo,
		emailService: emailService,
	}
}

// Execute records a payment. A receipt email is queued for completed
// payments when the tenant has an email address.
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, input RecordPaymentInput) (*RecordPaymentOutput, error) {
	if err := validatePaymentFields(input.Amount, input.Type, input.Status, input.Method); err != nil {
		return nil, err
	}

	property, err := uc.propertyRepo.FindByID(ctx, input.PropertyID)
	if err != nil || property == nil || property.UserID != input.UserID {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodePropertyNotFound,
			"property not found",
			domainerror.ErrPropertyNotFound,
		)
	}

	var tenant *entity.Tenant
	if input.TenantID != nil {
		tenant, err = uc.tenantRepo.FindByID(ctx, *input.TenantID)
		if err != nil || tenant == nil || tenant.UserID != input.UserID {
			return nil, domainerror.NewTenantError(
				domainerror.ErrCodeTenantNotFound,
				"tenant not found",
				domainerror.ErrTenantNotFound,
			)
		}
	}

	status := input.Status
	if status == "" {
		status = entity.PaymentStatusCompleted
	}

	payment := entity.NewPayment(
		input.UserID,
		property.ID,
		input.TenantID,
		input.LeaseID,
		input.Amount,
		input.Date,
		input.Type,
		status,
		input.Method,
		input.Description,
	)
	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	if status == entity.PaymentStatusCompleted && tenant != nil && tenant.Email != "" {
		if err := uc.emailService.QueuePaymentReceiptEmail(ctx, adapter.QueuePaymentReceiptInput{
			TenantEmail:  tenant.Email,
			TenantName:   tenant.FullName,
			PropertyName: property.Name,
			Amount:       payment.Amount.StringFixed(2),
			PaymentDate:  payment.Date.Format("2006-01-02"),
			Method:       string(payment.Method),
			Reference:    payment.ID.String(),
		}); err != nil {
			// Receipt delivery is best effort, the payment is already saved.
			slog.Warn("failed to queue payment receipt email",
				"payment_id", payment.ID,
				"error", err,
			)
		}
	}

	return &RecordPaymentOutput{Payment: payment}, nil
}

func validatePaymentFields(amount decimal.Decimal, paymentType entity.PaymentType, status entity.PaymentStatus, method entity.PaymentMethod) error {
	if !amount.IsPositive() {
		return domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"payment amount must be positive",
			domainerror.ErrInvalidPaymentAmount,
		)
	}
	switch paymentType {
	case entity.PaymentTypeRent, entity.PaymentTypeDeposit, entity.PaymentTypeOther:
	default:
		return domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentType,
			"payment type must be 'rent', 'deposit' or 'other'",
			domainerror.ErrInvalidPaymentType,
		)
	}
	switch status {
	case "", entity.PaymentStatusPending, entity.PaymentStatusCompleted, entity.PaymentStatusFailed, entity.PaymentStatusRefunded:
	default:
		return domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentStatus,
			"invalid payment status",
			domainerror.ErrInvalidPaymentStatus,
		)
	}
	switch method {
	case entity.PaymentMethodBankTransfer, entity.PaymentMethodCard, entity.PaymentMethodCash, entity.PaymentMethodOther:
	default:
		return domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"invalid payment method",
			domainerror.ErrInvalidPaymentMethod,
		)
	}
	return nil
}
