// Package expense contains expense tracking use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for expense descriptions.
const MaxDescriptionLength = 500

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	PropertyID  uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Category    string
	Description string
	ReceiptURL  *string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	propertyRepo adapter.PropertyRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, propertyRepo adapter.PropertyRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{expenseRepo: expenseRepo, propertyRepo: propertyRepo}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"expense amount must be positive",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrExpenseDescriptionTooLong,
		)
	}

	property, err := uc.propertyRepo.FindByID(ctx, input.PropertyID)
	if err != nil || property == nil || property.UserID != input.UserID {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodePropertyNotFound,
			"property not found",
			domainerror.ErrPropertyNotFound,
		)
	}

	expense := entity.NewExpense(
		input.UserID,
		property.ID,
		input.Amount,
		input.Date,
		input.Category,
		input.Description,
		input.ReceiptURL,
	)
	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{Expense: expense}, nil
}
