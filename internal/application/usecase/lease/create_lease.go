// Package lease contains lease agreement use cases.
package lease

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
)

const (
	// MinRentDueDay is the first valid rent due day of the month.
	MinRentDueDay = 1
	// MaxRentDueDay is the last valid rent due day. Capped at 28 so the
	// due date exists in every month.
	MaxRentDueDay = 28
)

// CreateLeaseInput represents the input for lease creation.
type CreateLeaseInput struct {
	UserID        uuid.UUID
	PropertyID    uuid.UUID
	RoomID        *uuid.UUID
	TenantID      uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
	MonthlyRent   decimal.Decimal
	DepositAmount decimal.Decimal
	RentDueDay    int
}

// CreateLeaseOutput represents the output of lease creation.
type CreateLeaseOutput struct {
	Lease *entity.Lease
}

// CreateLeaseUseCase handles lease creation logic.
type CreateLeaseUseCase struct {
	leaseRepo    adapter.LeaseRepository
	propertyRepo adapter.PropertyRepository
	roomRepo     adapter.RoomRepository
	tenantRepo   adapter.TenantRepository
}

// NewCreateLeaseUseCase creates a new CreateLeaseUseCase instance.
func NewCreateLeaseUseCase(
	leaseRepo adapter.LeaseRepository,
	propertyRepo adapter.PropertyRepository,
	roomRepo adapter.RoomRepository,
	tenantRepo adapter.TenantRepository,
) *CreateLeaseUseCase {
	return &CreateLeaseUseCase{
		leaseRepo:    leaseRepo,
		propertyRepo: propertyRepo,
		roomRepo:     roomRepo,
		tenantRepo:   tenantRepo,
	}
}

// Execute performs the lease creation. When a room is specified it must be
// available; the room is marked occupied on success.
func (uc *CreateLeaseUseCase) Execute(ctx context.Context, input CreateLeaseInput) (*CreateLeaseOutput, error) {
	if !input.EndDate.After(input.StartDate) {
		return nil, domainerror.NewLeaseError(
			domainerror.ErrCodeInvalidLeasePeriod,
			"lease end date must be after start date",
			domainerror.ErrInvalidLeasePeriod,
		)
	}
	if input.RentDueDay < MinRentDueDay || input.RentDueDay > MaxRentDueDay {
		return nil, domainerror.NewLeaseError(
			domainerror.ErrCodeInvalidRentDueDay,
			fmt.Sprintf("rent due day must be between %d and %d", MinRentDueDay, MaxRentDueDay),
			domainerror.ErrInvalidRentDueDay,
		)
	}

	property, err := uc.propertyRepo.FindByID(ctx, input.PropertyID)
	if err != nil || property == nil || property.UserID != input.UserID {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodePropertyNotFound,
			"property not found",
			domainerror.ErrPropertyNotFound,
		)
	}

	tenant, err := uc.tenantRepo.FindByID(ctx, input.TenantID)
	if err != nil || tenant == nil || tenant.UserID != input.UserID {
		return nil, domainerror.NewTenantError(
			domainerror.ErrCodeTenantNotFound,
			"tenant not found",
			domainerror.ErrTenantNotFound,
		)
	}

	var room *entity.Room
	if input.RoomID != nil {
		room, err = uc.roomRepo.FindByID(ctx, *input.RoomID)
		if err != nil || room == nil || room.PropertyID != property.ID {
			return nil, domainerror.NewPropertyError(
				domainerror.ErrCodeRoomNotFound,
				"room not found",
				domainerror.ErrRoomNotFound,
			)
		}
		if !room.Available {
			return nil, domainerror.NewPropertyError(
				domainerror.ErrCodeRoomNotAvailable,
				"room is not available",
				domainerror.ErrRoomNotAvailable,
			)
		}
	}

	lease := entity.NewLease(
		input.UserID,
		property.ID,
		input.RoomID,
		tenant.ID,
		input.StartDate,
		input.EndDate,
		input.MonthlyRent,
		input.DepositAmount,
		input.RentDueDay,
	)
	if err := uc.leaseRepo.Create(ctx, lease); err != nil {
		return nil, fmt.Errorf("failed to create lease: %w", err)
	}

	if room != nil {
		room.Available = false
		room.UpdatedAt = time.Now().UTC()
		if err := uc.roomRepo.Update(ctx, room); err != nil {
			return nil, fmt.Errorf("failed to mark room occupied: %w", err)
		}
	}

	return &CreateLeaseOutput{Lease: lease}, nil
}
