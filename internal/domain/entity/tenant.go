// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tenant represents a person renting a room in one of the user's properties.
type Tenant struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	PropertyID  *uuid.UUID // Optional until the tenant is placed
	FullName    string
	Email       string
	Phone       string
	MoveInDate  *time.Time
	MoveOutDate *time.Time
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTenant creates a new Tenant entity, active by default.
func NewTenant(userID uuid.UUID, propertyID *uuid.UUID, fullName, email, phone string) *Tenant {
	now := time.Now().UTC()
	return &Tenant{
		ID:         uuid.New(),
		UserID:     userID,
		PropertyID: propertyID,
		FullName:   fullName,
		Email:      email,
		Phone:      phone,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
