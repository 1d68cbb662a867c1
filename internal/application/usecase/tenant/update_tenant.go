package tenant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
)

// UpdateTenantInput represents the input for tenant update.
// Nil pointer fields are left unchanged.
type UpdateTenantInput struct {
	UserID      uuid.UUID
	TenantID    uuid.UUID
	PropertyID  *uuid.UUID
	FullName    *string
	Email       *string
	Phone       *string
	MoveInDate  *time.Time
	MoveOutDate *time.Time
}

// UpdateTenantOutput represents the output of tenant update.
type UpdateTenantOutput struct {
	Tenant *entity.Tenant
}

// UpdateTenantUseCase handles tenant update logic.
type UpdateTenantUseCase struct {
	tenantRepo adapter.TenantRepository
}

// NewUpdateTenantUseCase creates a new UpdateTenantUseCase instance.
func NewUpdateTenantUseCase(tenantRepo adapter.TenantRepository) *UpdateTenantUseCase {
	return &UpdateTenantUseCase{tenantRepo: tenantRepo}
}

// Execute performs the tenant update.
func (uc *UpdateTenantUseCase) Execute(ctx context.Context, input UpdateTenantInput) (*UpdateTenantOutput, error) {
	tenant, err := findOwnedTenant(ctx, uc.tenantRepo, input.UserID, input.TenantID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		name := strings.TrimSpace(*input.FullName)
		if name == "" {
			return nil, domainerror.NewTenantError(
				domainerror.ErrCodeTenantNameRequired,
				"tenant full name is required",
				domainerror.ErrTenantNameRequired,
			)
		}
		tenant.FullName = name
	}
	if input.Email != nil {
		if *input.Email != "" && !emailPattern.MatchString(*input.Email) {
			return nil, domainerror.NewTenantError(
				domainerror.ErrCodeTenantEmailInvalid,
				"tenant email is invalid",
				domainerror.ErrTenantEmailInvalid,
			)
		}
		tenant.Email = *input.Email
	}
	if input.Phone != nil {
		tenant.Phone = *input.Phone
	}
	if input.PropertyID != nil {
		tenant.PropertyID = input.PropertyID
	}
	if input.MoveInDate != nil {
		tenant.MoveInDate = input.MoveInDate
	}
	if input.MoveOutDate != nil {
		tenant.MoveOutDate = input.MoveOutDate
	}
	tenant.UpdatedAt = time.Now().UTC()

	if err := uc.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	return &UpdateTenantOutput{Tenant: tenant}, nil
}

// findOwnedTenant loads a tenant and verifies it belongs to the user.
func findOwnedTenant(ctx context.Context, repo adapter.TenantRepository, userID, tenantID uuid.UUID) (*entity.Tenant, error) {
	tenant, err := repo.FindByID(ctx, tenantID)
	if err != nil || tenant == nil || tenant.UserID != userID {
		return nil, domainerror.NewTenantError(
			domainerror.ErrCodeTenantNotFound,
			"tenant not found",
			domainerror.ErrTenantNotFound,
		)
	}
	return tenant, nil
}
