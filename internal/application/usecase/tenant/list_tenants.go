package tenant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
)

// ListTenantsInput represents the input for listing tenants.
type ListTenantsInput struct {
	UserID     uuid.UUID
	ActiveOnly bool
}

// ListTenantsOutput represents the output of listing tenants.
type ListTenantsOutput struct {
	Tenants []*entity.Tenant
}

// ListTenantsUseCase handles listing the user's tenants.
type ListTenantsUseCase struct {
	tenantRepo adapter.TenantRepository
}

// NewListTenantsUseCase creates a new ListTenantsUseCase instance.
func NewListTenantsUseCase(tenantRepo adapter.TenantRepository) *ListTenantsUseCase {
	return &ListTenantsUseCase{tenantRepo: tenantRepo}
}

// Execute lists the user's tenants, optionally filtering out archived ones.
func (uc *ListTenantsUseCase) Execute(ctx context.Context, input ListTenantsInput) (*ListTenantsOutput, error) {
	tenants, err := uc.tenantRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	result := make([]*entity.Tenant, 0, len(tenants))
	for _, t := range tenants {
		if input.ActiveOnly && !t.Active {
			continue
		}
		result = append(result, t)
	}

	return &ListTenantsOutput{Tenants: result}, nil
}
