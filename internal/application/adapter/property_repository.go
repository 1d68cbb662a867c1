// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/domain/entity"
)

// PropertyRepository defines the interface for property persistence operations.
type PropertyRepository interface {
	// Create creates a new property in the database.
	Create(ctx context.Context, property *entity.Property) error

	// FindByID retrieves a property by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// FindByUserID retrieves all properties owned by a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Property, error)

	// Update updates an existing property in the database.
	Update(ctx context.Context, property *entity.Property) error

	// Delete removes a property from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// RoomRepository defines the interface for room persistence operations.
type RoomRepository interface {
	// Create creates a new room in the database.
	Create(ctx context.Context, room *entity.Room) error

	// FindByID retrieves a room by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)

	// FindByPropertyID retrieves all rooms of a property.
	FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*entity.Room, error)

	// Update updates an existing room in the database.
	Update(ctx context.Context, room *entity.Room) error

	// Delete removes a room from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
