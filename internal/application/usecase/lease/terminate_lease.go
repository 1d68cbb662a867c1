package lease

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
)

// TerminateLeaseInput represents the input for lease termination.
type TerminateLeaseInput struct {
	UserID  uuid.UUID
	LeaseID uuid.UUID
}

// TerminateLeaseOutput represents the output of lease termination.
type TerminateLeaseOutput struct {
	Lease *entity.Lease
}

// TerminateLeaseUseCase handles early lease termination.
type TerminateLeaseUseCase struct {
	leaseRepo adapter.LeaseRepository
	roomRepo  adapter.RoomRepository
}

// NewTerminateLeaseUseCase creates a new TerminateLeaseUseCase instance.
func NewTerminateLeaseUseCase(leaseRepo adapter.LeaseRepository, roomRepo adapter.RoomRepository) *TerminateLeaseUseCase {
	return &TerminateLeaseUseCase{leaseRepo: leaseRepo, roomRepo: roomRepo}
}

// Execute terminates an active lease and frees its room.
func (uc *TerminateLeaseUseCase) Execute(ctx context.Context, input TerminateLeaseInput) (*TerminateLeaseOutput, error) {
	lease, err := uc.leaseRepo.FindByID(ctx, input.LeaseID)
	if err != nil || lease == nil || lease.UserID != input.UserID {
		return nil, domainerror.NewLeaseError(
			domainerror.ErrCodeLeaseNotFound,
			"lease not found",
			domainerror.ErrLeaseNotFound,
		)
	}

	if !lease.IsActive() {
		return nil, domainerror.NewLeaseError(
			domainerror.ErrCodeLeaseNotActive,
			"lease is not active",
			domainerror.ErrLeaseNotActive,
		)
	}

	now := time.Now().UTC()
	lease.Terminate(now)
	if err := uc.leaseRepo.Update(ctx, lease); err != nil {
		return nil, fmt.Errorf("failed to terminate lease: %w", err)
	}

	if lease.RoomID != nil {
		room, err := uc.roomRepo.FindByID(ctx, *lease.RoomID)
		if err == nil && room != nil {
			room.Available = true
			room.UpdatedAt = now
			if err := uc.roomRepo.Update(ctx, room); err != nil {
				return nil, fmt.Errorf("failed to free room: %w", err)
			}
		}
	}

	return &TerminateLeaseOutput{Lease: lease}, nil
}
