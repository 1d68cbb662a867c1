package lease

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
)

// ListLeasesInput represents the input for listing leases.
type ListLeasesInput struct {
	UserID     uuid.UUID
	PropertyID *uuid.UUID
	RoomID     *uuid.UUID
	TenantID   *uuid.UUID
	Status     *entity.LeaseStatus
}

// ListLeasesOutput represents the output of listing leases.
type ListLeasesOutput struct {
	Leases []*entity.Lease
}

// ListLeasesUseCase handles listing the user's leases.
type ListLeasesUseCase struct {
	leaseRepo adapter.LeaseRepository
}

// NewListLeasesUseCase creates a new ListLeasesUseCase instance.
func NewListLeasesUseCase(leaseRepo adapter.LeaseRepository) *ListLeasesUseCase {
	return &ListLeasesUseCase{leaseRepo: leaseRepo}
}

// Execute lists leases matching the given filters. Active leases past their
// end date are reported with the expired status.
func (uc *ListLeasesUseCase) Execute(ctx context.Context, input ListLeasesInput) (*ListLeasesOutput, error) {
	filter := adapter.LeaseFilter{
		PropertyID: input.PropertyID,
		RoomID:     input.RoomID,
		TenantID:   input.TenantID,
		Status:     input.Status,
	}

	leases, err := uc.leaseRepo.FindByUserID(ctx, input.UserID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leases: %w", err)
	}

	now := time.Now().UTC()
	for _, l := range leases {
		if l.Status == entity.LeaseStatusActive && l.EndDate.Before(now) {
			l.Status = entity.LeaseStatusExpired
		}
	}
	if leases == nil {
		leases = []*entity.Lease{}
	}

	return &ListLeasesOutput{Leases: leases}, nil
}
