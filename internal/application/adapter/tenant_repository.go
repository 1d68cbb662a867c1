// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/domain/entity"
)

// TenantRepository defines the interface for tenant persistence operations.
type TenantRepository interface {
	// Create creates a new tenant in the database.
	Create(ctx context.Context, tenant *entity.Tenant) error

	// FindByID retrieves a tenant by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error)

	// FindByUserID retrieves all tenants registered by a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Tenant, error)

	// FindByEmail retrieves a tenant by email within a user's account.
	FindByEmail(ctx context.Context, userID uuid.UUID, email string) (*entity.Tenant, error)

	// Update updates an existing tenant in the database.
	Update(ctx context.Context, tenant *entity.Tenant) error

	// Delete removes a tenant from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
