// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a property-related cost recorded by the user.
// Category is free-form text matched case-insensitively by reporting.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	PropertyID  uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Category    string
	Description string
	ReceiptURL  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewExpense creates a new Expense entity.
func NewExpense(
	userID, propertyID uuid.UUID,
	amount decimal.Decimal,
	date time.Time,
	category, description string,
	receiptURL *string,
) *Expense {
	now := time.Now().UTC()
	return &Expense{
		ID:          uuid.New(),
		UserID:      userID,
		PropertyID:  propertyID,
		Amount:      amount,
		Date:        date,
		Category:    category,
		Description: description,
		ReceiptURL:  receiptURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// HasReceipt returns true when a receipt URL is attached.
func (e *Expense) HasReceipt() bool {
	return e.ReceiptURL != nil && *e.ReceiptURL != ""
}
