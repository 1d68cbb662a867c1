// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/domain/entity"
)

// PaymentFilter represents filters for querying payments.
type PaymentFilter struct {
	PropertyID *uuid.UUID
	LeaseID    *uuid.UUID
	TenantID   *uuid.UUID
	Type       *entity.PaymentType
	Status     *entity.PaymentStatus
	StartDate  *time.Time
	EndDate    *time.Time
}

// PaymentPagination represents pagination parameters for payment queries.
type PaymentPagination struct {
	Page     int
	PageSize int
}

// PaymentRepository defines the interface for payment persistence operations.
type PaymentRepository interface {
	// Create creates a new payment in the database.
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByID retrieves a payment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindByUserID retrieves payments for a user matching the given filters,
	// ordered by payment date descending. Returns the page and the total count.
	FindByUserID(ctx context.Context, userID uuid.UUID, filter PaymentFilter, pagination PaymentPagination) ([]*entity.Payment, int64, error)

	// Update updates an existing payment in the database.
	Update(ctx context.Context, payment *entity.Payment) error

	// Delete removes a payment from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
