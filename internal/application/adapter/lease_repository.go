// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/domain/entity"
)

// LeaseFilter represents filters for querying leases.
type LeaseFilter struct {
	PropertyID *uuid.UUID
	RoomID     *uuid.UUID
	TenantID   *uuid.UUID
	Status     *entity.LeaseStatus
}

// LeaseRepository defines the interface for lease persistence operations.
type LeaseRepository interface {
	// Create creates a new lease in the database.
	Create(ctx context.Context, lease *entity.Lease) error

	// FindByID retrieves a lease by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Lease, error)

	// FindByUserID retrieves leases for a user matching the given filters.
	FindByUserID(ctx context.Context, userID uuid.UUID, filter LeaseFilter) ([]*entity.Lease, error)

	// FindActiveByRoomID retrieves the active lease on a room, if any.
	FindActiveByRoomID(ctx context.Context, roomID uuid.UUID) (*entity.Lease, error)

	// FindExpiringBetween retrieves active leases whose end date falls in the window.
	FindExpiringBetween(ctx context.Context, start, end time.Time) ([]*entity.Lease, error)

	// FindActiveWithRentDueDay retrieves active leases whose rent due day matches.
	FindActiveWithRentDueDay(ctx context.Context, day int) ([]*entity.Lease, error)

	// Update updates an existing lease in the database.
	Update(ctx context.Context, lease *entity.Lease) error
}
