package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/adapter"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
)

// DeletePaymentInput represents the input for payment deletion.
type DeletePaymentInput struct {
	UserID    uuid.UUID
	PaymentID uuid.UUID
}

// DeletePaymentUseCase handles payment deletion logic.
type DeletePaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewDeletePaymentUseCase creates a new DeletePaymentUseCase instance.
func NewDeletePaymentUseCase(paymentRepo adapter.PaymentRepository) *DeletePaymentUseCase {
	return &DeletePaymentUseCase{paymentRepo: paymentRepo}
}

// Execute performs the payment deletion.
func (uc *DeletePaymentUseCase) Execute(ctx context.Context, input DeletePaymentInput) error {
	payment, err := uc.paymentRepo.FindByID(ctx, input.PaymentID)
	if err != nil || payment == nil || payment.UserID != input.UserID {
		return domainerror.NewPaymentError(
			domainerror.ErrCodePaymentNotFound,
			"payment not found",
			domainerror.ErrPaymentNotFound,
		)
	}

	if err := uc.paymentRepo.Delete(ctx, payment.ID); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}
