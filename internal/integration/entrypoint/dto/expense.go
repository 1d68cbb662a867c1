package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/coliving-manager/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	PropertyID  string          `json:"property_id" binding:"required,uuid"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date" binding:"required"` // YYYY-MM-DD
	Category    string          `json:"category"`
	Description string          `json:"description"`
	ReceiptURL  *string         `json:"receipt_url"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Date        *string          `json:"date"` // YYYY-MM-DD
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	ReceiptURL  *string          `json:"receipt_url"`
}

// SuggestCategoryRequest represents the request body for an AI category suggestion.
type SuggestCategoryRequest struct {
	Description string `json:"description" binding:"required,min=1,max=500"`
	Vendor      string `json:"vendor"`
	Amount      string `json:"amount"`
}

// SuggestCategoryResponse represents the suggested category.
type SuggestCategoryResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	PropertyID  string          `json:"property_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	ReceiptURL  *string         `json:"receipt_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID.String(),
		PropertyID:  expense.PropertyID.String(),
		Amount:      expense.Amount,
		Date:        expense.Date,
		Category:    expense.Category,
		Description: expense.Description,
		ReceiptURL:  expense.ReceiptURL,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}

// ToExpenseListResponse converts domain Expense entities to a list response.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	response := ExpenseListResponse{
		Expenses: make([]ExpenseResponse, 0, len(expenses)),
	}
	for _, expense := range expenses {
		response.Expenses = append(response.Expenses, ToExpenseResponse(expense))
	}
	return response
}
