package lease

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
)

// DefaultExpiryWindowDays is the lookahead used when none is requested.
const DefaultExpiryWindowDays = 60

// ListExpiringLeasesInput represents the input for listing expiring leases.
type ListExpiringLeasesInput struct {
	UserID     uuid.UUID
	WithinDays int
}

// ListExpiringLeasesOutput represents the output of listing expiring leases.
type ListExpiringLeasesOutput struct {
	Leases []*entity.Lease
}

// ListExpiringLeasesUseCase lists active leases ending soon.
type ListExpiringLeasesUseCase struct {
	leaseRepo adapter.LeaseRepository
}

// NewListExpiringLeasesUseCase creates a new ListExpiringLeasesUseCase instance.
func NewListExpiringLeasesUseCase(leaseRepo adapter.LeaseRepository) *ListExpiringLeasesUseCase {
	return &ListExpiringLeasesUseCase{leaseRepo: leaseRepo}
}

// Execute lists the user's active leases that end within the window.
func (uc *ListExpiringLeasesUseCase) Execute(ctx context.Context, input ListExpiringLeasesInput) (*ListExpiringLeasesOutput, error) {
	days := input.WithinDays
	if days <= 0 {
		days = DefaultExpiryWindowDays
	}

	now := time.Now().UTC()
	leases, err := uc.leaseRepo.FindExpiringBetween(ctx, now, now.AddDate(0, 0, days))
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring leases: %w", err)
	}

	result := make([]*entity.Lease, 0, len(leases))
	for _, l := range leases {
		if l.UserID == input.UserID {
			result = append(result, l)
		}
	}

	return &ListExpiringLeasesOutput{Leases: result}, nil
}
