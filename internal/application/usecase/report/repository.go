// Package report contains the financial, cash-flow, and tax reporting use cases.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coliving-manager/backend/internal/domain/entity"
)

// ReportRepository defines the record-fetch capability the reporting layer
// depends on. Each report call fetches its own working set once and reduces
// it in memory; the repository never paginates.
type ReportRepository interface {
	// GetPaymentRecords returns the user's payments dated within [start, end],
	// inclusive on both ends. A nil propertyID means all properties.
	GetPaymentRecords(
		ctx context.Context,
		userID uuid.UUID,
		propertyID *uuid.UUID,
		start, end time.Time,
	) ([]*entity.Payment, error)

	// GetExpenseRecords returns the user's expenses dated within [start, end],
	// inclusive on both ends. A nil propertyID means all properties.
	GetExpenseRecords(
		ctx context.Context,
		userID uuid.UUID,
		propertyID *uuid.UUID,
		start, end time.Time,
	) ([]*entity.Expense, error)

	// GetPropertyFacts returns the purchase facts for every property the user
	// owns, used for straight-line depreciation.
	GetPropertyFacts(ctx context.Context, userID uuid.UUID) ([]PropertyFacts, error)
}

// PropertyFacts holds the per-property figures needed by the tax categorizer.
type PropertyFacts struct {
	PropertyID    uuid.UUID
	Name          string
	PurchasePrice *decimal.Decimal
	LandValue     *decimal.Decimal
}

// HasDepreciationData returns true when both purchase price and land value are known.
func (f PropertyFacts) HasDepreciationData() bool {
	return f.PurchasePrice != nil && f.LandValue != nil
}
