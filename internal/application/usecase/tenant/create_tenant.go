// Package tenant contains tenant management use cases.
package tenant

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CreateTenantInput represents the input for tenant creation.
type CreateTenantInput struct {
	UserID     uuid.UUID
	PropertyID *uuid.UUID
	FullName   string
	Email      string
	Phone      string
}

// CreateTenantOutput represents the output of tenant creation.
type CreateTenantOutput struct {
	Tenant *entity.Tenant
}

// CreateTenantUseCase handles tenant creation logic.
type CreateTenantUseCase struct {
	tenantRepo adapter.TenantRepository
}

// NewCreateTenantUseCase creates a new CreateTenantUseCase instance.
func NewCreateTenantUseCase(tenantRepo adapter.TenantRepository) *CreateTenantUseCase {
	return &CreateTenantUseCase{tenantRepo: tenantRepo}
}

// Execute performs the tenant creation.
func (uc *CreateTenantUseCase) Execute(ctx context.Context, input CreateTenantInput) (*CreateTenantOutput, error) {
	if strings.TrimSpace(input.FullName) == "" {
		return nil, domainerror.NewTenantError(
			domainerror.ErrCodeTenantNameRequired,
			"tenant full name is required",
			domainerror.ErrTenantNameRequired,
		)
	}
	if input.Email != "" && !emailPattern.MatchString(input.Email) {
		return nil, domainerror.NewTenantError(
			domainerror.ErrCodeTenantEmailInvalid,
			"tenant email is invalid",
			domainerror.ErrTenantEmailInvalid,
		)
	}

	tenant := entity.NewTenant(input.UserID, input.PropertyID, strings.TrimSpace(input.FullName), input.Email, input.Phone)
	if err := uc.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	return &CreateTenantOutput{Tenant: tenant}, nil
}
