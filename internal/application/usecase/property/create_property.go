// Package property contains property and room management use cases.
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

// CreatePropertyInput represents the input for property creation.
type CreatePropertyInput struct {
	UserID        uuid.UUID
	Name          string
	Address       string
	City          string
	State         string
	PostalCode    string
	PurchasePrice *decimal.Decimal
	LandValue     *decimal.Decimal
	PurchaseDate  *time.Time
	Notes         string
}

// CreatePropertyOutput represents the output of property creation.
type CreatePropertyOutput struct {
	Property *entity.Property
}

// CreatePropertyUseCase handles property creation logic.
type CreatePropertyUseCase struct {
	propertyRepo adapter.PropertyRepository
}

// NewCreatePropertyUseCase creates a new CreatePropertyUseCase instance.
func NewCreatePropertyUseCase(propertyRepo adapter.PropertyRepository) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{propertyRepo: propertyRepo}
}

// Execute performs the property creation.
func (uc *CreatePropertyUseCase) Execute(ctx context.Context, input CreatePropertyInput) (*CreatePropertyOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodePropertyNameRequired,
			"property name is required",
			domainerror.ErrPropertyNameRequired,
		)
	}

	if err := validatePurchaseData(input.PurchasePrice, input.LandValue); err != nil {
		return nil, err
	}

	property := entity.NewProperty(
		input.UserID,
		strings.TrimSpace(input.Name),
		input.Address,
		input.City,
		input.State,
		input.PostalCode,
		input.Notes,
	)
	property.PurchasePrice = input.PurchasePrice
	property.LandValue = input.LandValue
	property.PurchaseDate = input.PurchaseDate

	if err := uc.propertyRepo.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	return &CreatePropertyOutput{Property: property}, nil
}

// validatePurchaseData checks that the land value does not exceed the purchase
// price and that neither is negative. Both fields are optional.
func validatePurchaseData(purchasePrice, landValue *decimal.Decimal) error {
	if purchasePrice != nil && purchasePrice.IsNegative() {
		return domainerror.NewPropertyError(
			domainerror.ErrCodeInvalidPurchaseData,
			"purchase price must not be negative",
			domainerror.ErrInvalidPurchaseData,
		)
	}
	if landValue != nil && landValue.IsNegative() {
		return domainerror.NewPropertyError(
			domainerror.ErrCodeInvalidPurchaseData,
			"land value must not be negative",
			domainerror.ErrInvalidPurchaseData,
		)
	}
	if purchasePrice != nil && landValue != nil && landValue.GreaterThan(*purchasePrice) {
		return domainerror.NewPropertyError(
			domainerror.ErrCodeInvalidPurchaseData,
			"land value must not exceed purchase price",
			domainerror.ErrInvalidPurchaseData,
		)
	}
	return nil
}
