package property

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
)

// UpdatePropertyInput represents the input for property update.
// Nil pointer fields are left unchanged.
type UpdatePropertyInput struct {
	UserID        uuid.UUID
	PropertyID    uuid.UUID
	Name          *string
	Address       *string
	City          *string
	State         *string
	PostalCode    *string
	PurchasePrice *decimal.Decimal
	LandValue     *decimal.Decimal
	PurchaseDate  *time.Time
	Notes         *string
}

// UpdatePropertyOutput represents the output of property update.
type UpdatePropertyOutput struct {
	Property *entity.Property
}

// UpdatePropertyUseCase handles property update logic.
type UpdatePropertyUseCase struct {
	propertyRepo adapter.PropertyRepository
}

// NewUpdatePropertyUseCase creates a new UpdatePropertyUseCase instance.
func NewUpdatePropertyUseCase(propertyRepo adapter.PropertyRepository) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{propertyRepo: propertyRepo}
}

// Execute performs the property update.
func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, input UpdatePropertyInput) (*UpdatePropertyOutput, error) {
	property, err := findOwnedProperty(ctx, uc.propertyRepo, input.UserID, input.PropertyID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewPropertyError(
				domainerror.ErrCodePropertyNameRequired,
				"property name is required",
				domainerror.ErrPropertyNameRequired,
			)
		}
		property.Name = name
	}
	if input.Address != nil {
		property.Address = *input.Address
	}
	if input.City != nil {
		property.City = *input.City
	}
	if input.State != nil {
		property.State = *input.State
	}
	if input.PostalCode != nil {
		property.PostalCode = *input.PostalCode
	}
	if input.Notes != nil {
		property.Notes = *input.Notes
	}
	if input.PurchaseDate != nil {
		property.PurchaseDate = input.PurchaseDate
	}

	newPrice := property.PurchasePrice
	newLand := property.LandValue
	if input.PurchasePrice != nil {
		newPrice = input.PurchasePrice
	}
	if input.LandValue != nil {
		newLand = input.LandValue
	}
	if err := validatePurchaseData(newPrice, newLand); err != nil {
		return nil, err
	}
	property.PurchasePrice = newPrice
	property.LandValue = newLand
	property.UpdatedAt = time.Now().UTC()

	if err := uc.propertyRepo.Update(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	return &UpdatePropertyOutput{Property: property}, nil
}
