// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Room represents a rentable room within a property.
type Room struct {
	ID          uuid.UUID
	PropertyID  uuid.UUID
	Name        string
	MonthlyRent decimal.Decimal
	SizeSqm     *decimal.Decimal
	Furnished   bool
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewRoom creates a new Room entity, available by default.
func NewRoom(propertyID uuid.UUID, name string, monthlyRent decimal.Decimal, sizeSqm *decimal.Decimal, furnished bool) *Room {
	now := time.Now().UTC()
	return &Room{
		ID:          uuid.New(),
		PropertyID:  propertyID,
		Name:        name,
		MonthlyRent: monthlyRent,
		SizeSqm:     sizeSqm,
		Furnished:   furnished,
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
