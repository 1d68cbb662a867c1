package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	UserID     uuid.UUID
	PropertyID *uuid.UUID
	Category   *string
	StartDate  *time.Time
	EndDate    *time.Time
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase handles listing the user's expenses.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute lists expenses matching the given filters, newest first.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	filter := adapter.ExpenseFilter{
		PropertyID: input.PropertyID,
		Category:   input.Category,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}

	expenses, err := uc.expenseRepo.FindByUserID(ctx, input.UserID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		expenses = []*entity.Expense{}
	}

	return &ListExpensesOutput{Expenses: expenses}, nil
}
