package tenant

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/adapter"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
)

// ArchiveTenantInput represents the input for tenant archival.
type ArchiveTenantInput struct {
	UserID      uuid.UUID
	TenantID    uuid.UUID
	MoveOutDate *time.Time
}

// ArchiveTenantUseCase marks a tenant as no longer active.
// Archived tenants are kept for reporting history.
type ArchiveTenantUseCase struct {
	tenantRepo adapter.TenantRepository
}

// NewArchiveTenantUseCase creates a new ArchiveTenantUseCase instance.
func NewArchiveTenantUseCase(tenantRepo adapter.TenantRepository) *ArchiveTenantUseCase {
	return &ArchiveTenantUseCase{tenantRepo: tenantRepo}
}

// Execute performs the tenant archival.
func (uc *ArchiveTenantUseCase) Execute(ctx context.Context, input ArchiveTenantInput) error {
	tenant, err := findOwnedTenant(ctx, uc.tenantRepo, input.UserID, input.TenantID)
	if err != nil {
		return err
	}

	if !tenant.Active {
		return domainerror.NewTenantError(
			domainerror.ErrCodeTenantAlreadyArchived,
			"tenant is already archived",
			domainerror.ErrTenantAlreadyArchived,
		)
	}

	tenant.Active = false
	if input.MoveOutDate != nil {
		tenant.MoveOutDate = input.MoveOutDate
	}
	tenant.UpdatedAt = time.Now().UTC()

	if err := uc.tenantRepo.Update(ctx, tenant); err != nil {
		return fmt.Errorf("failed to archive tenant: %w", err)
	}
	return nil
}
