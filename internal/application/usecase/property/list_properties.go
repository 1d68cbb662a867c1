package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
)

// ListPropertiesInput represents the input for listing properties.
type ListPropertiesInput struct {
	UserID uuid.UUID
}

// ListPropertiesOutput represents the output of listing properties.
type ListPropertiesOutput struct {
	Properties []*entity.Property
}

// ListPropertiesUseCase handles listing the user's properties.
type ListPropertiesUseCase struct {
	propertyRepo adapter.PropertyRepository
}

// NewListPropertiesUseCase creates a new ListPropertiesUseCase instance.
func NewListPropertiesUseCase(propertyRepo adapter.PropertyRepository) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{propertyRepo: propertyRepo}
}

// Execute lists all properties owned by the user.
func (uc *ListPropertiesUseCase) Execute(ctx context.Context, input ListPropertiesInput) (*ListPropertiesOutput, error) {
	properties, err := uc.propertyRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	if properties == nil {
		properties = []*entity.Property{}
	}
	return &ListPropertiesOutput{Properties: properties}, nil
}
