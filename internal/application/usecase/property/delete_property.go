package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/adapter"
)

// DeletePropertyInput represents the input for property deletion.
type DeletePropertyInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
}

// DeletePropertyUseCase handles property deletion logic.
type DeletePropertyUseCase struct {
	propertyRepo adapter.PropertyRepository
}

// NewDeletePropertyUseCase creates a new DeletePropertyUseCase instance.
func NewDeletePropertyUseCase(propertyRepo adapter.PropertyRepository) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{propertyRepo: propertyRepo}
}

// Execute performs the property deletion. Rooms are removed by the
// persistence layer together with the property.
func (uc *DeletePropertyUseCase) Execute(ctx context.Context, input DeletePropertyInput) error {
	property, err := findOwnedProperty(ctx, uc.propertyRepo, input.UserID, input.PropertyID)
	if err != nil {
		return err
	}

	if err := uc.propertyRepo.Delete(ctx, property.ID); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	return nil
}
