// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentType represents what a payment is for.
type PaymentType string

const (
	PaymentTypeRent    PaymentType = "rent"
	PaymentTypeDeposit PaymentType = "deposit"
	PaymentTypeOther   PaymentType = "other"
)

// PaymentStatus represents the settlement state of a payment.
// Only completed payments contribute to revenue reporting.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// PaymentMethod represents how a payment was made.
type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodOther        PaymentMethod = "other"
)

// Payment represents an income record: rent, deposit, or other tenant payment.
type Payment struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	PropertyID  uuid.UUID
	TenantID    *uuid.UUID
	LeaseID     *uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Type        PaymentType
	Status      PaymentStatus
	Method      PaymentMethod
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewPayment creates a new Payment entity.
func NewPayment(
	userID, propertyID uuid.UUID,
	tenantID, leaseID *uuid.UUID,
	amount decimal.Decimal,
	date time.Time,
	paymentType PaymentType,
	status PaymentStatus,
	method PaymentMethod,
	description string,
) *Payment {
	now := time.Now().UTC()
	return &Payment{
		ID:          uuid.New(),
		UserID:      userID,
		PropertyID:  propertyID,
		TenantID:    tenantID,
		LeaseID:     leaseID,
		Amount:      amount,
		Date:        date,
		Type:        paymentType,
		Status:      status,
		Method:      method,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CanTransitionTo reports whether the payment status may move to target.
// Allowed: pending -> completed/failed, completed -> refunded.
func (p *Payment) CanTransitionTo(target PaymentStatus) bool {
	switch p.Status {
	case PaymentStatusPending:
		return target == PaymentStatusCompleted || target == PaymentStatusFailed
	case PaymentStatusCompleted:
		return target == PaymentStatusRefunded
	default:
		return false
	}
}
