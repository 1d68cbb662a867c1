// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Property represents a coliving property owned by a user.
type Property struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Address       string
	City          string
	State         string
	PostalCode    string
	PurchasePrice *decimal.Decimal // Cost basis for depreciation, optional
	LandValue     *decimal.Decimal // Non-depreciable land portion, optional
	PurchaseDate  *time.Time
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewProperty creates a new Property entity.
func NewProperty(userID uuid.UUID, name, address, city, state, postalCode, notes string) *Property {
	now := time.Now().UTC()
	return &Property{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Address:    address,
		City:       city,
		State:      state,
		PostalCode: postalCode,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// HasDepreciationData returns true when both purchase price and land value are recorded.
func (p *Property) HasDepreciationData() bool {
	return p.PurchasePrice != nil && p.LandValue != nil
}
