// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeaseStatus represents the lifecycle state of a lease agreement.
type LeaseStatus string

const (
	LeaseStatusActive     LeaseStatus = "active"
	LeaseStatusTerminated LeaseStatus = "terminated"
	LeaseStatusExpired    LeaseStatus = "expired"
)

// Lease represents a rental agreement between the user and a tenant.
type Lease struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	PropertyID    uuid.UUID
	RoomID        *uuid.UUID
	TenantID      uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
	MonthlyRent   decimal.Decimal
	DepositAmount decimal.Decimal
	RentDueDay    int // Day of month rent is due, 1-28
	Status        LeaseStatus
	TerminatedAt  *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewLease creates a new active Lease entity.
func NewLease(
	userID, propertyID uuid.UUID,
	roomID *uuid.UUID,
	tenantID uuid.UUID,
	startDate, endDate time.Time,
	monthlyRent, depositAmount decimal.Decimal,
	rentDueDay int,
) *Lease {
	now := time.Now().UTC()
	return &Lease{
		ID:            uuid.New(),
		UserID:        userID,
		PropertyID:    propertyID,
		RoomID:        roomID,
		TenantID:      tenantID,
		StartDate:     startDate,
		EndDate:       endDate,
		MonthlyRent:   monthlyRent,
		DepositAmount: depositAmount,
		RentDueDay:    rentDueDay,
		Status:        LeaseStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Terminate marks the lease as terminated at the given time.
func (l *Lease) Terminate(at time.Time) {
	l.Status = LeaseStatusTerminated
	l.TerminatedAt = &at
	l.UpdatedAt = time.Now().UTC()
}

// IsActive returns true when the lease is in the active state.
func (l *Lease) IsActive() bool {
	return l.Status == LeaseStatusActive
}

// ExpiresWithin returns true when an active lease ends within d of now.
func (l *Lease) ExpiresWithin(now time.Time, d time.Duration) bool {
	if !l.IsActive() {
		return false
	}
	return l.EndDate.After(now) && l.EndDate.Sub(now) <= d
}

// NextRentDue returns the next rent due date on or after the given time.
func (l *Lease) NextRentDue(now time.Time) time.Time {
	due := time.Date(now.Year(), now.Month(), l.RentDueDay, 0, 0, 0, 0, now.Location())
	if due.Before(now.Truncate(24 * time.Hour)) {
		due = due.AddDate(0, 1, 0)
	}
	return due
}
