package property

import (
	"context"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
)

// GetPropertyInput represents the input for fetching a single property.
type GetPropertyInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
}

// GetPropertyOutput represents the output of fetching a single property.
type GetPropertyOutput struct {
	Property *entity.Property
	Rooms    []*entity.Room
}

// GetPropertyUseCase handles fetching a property with its rooms.
type GetPropertyUseCase struct {
	propertyRepo adapter.PropertyRepository
	roomRepo     adapter.RoomRepository
}

// NewGetPropertyUseCase creates a new GetPropertyUseCase instance.
func NewGetPropertyUseCase(propertyRepo adapter.PropertyRepository, roomRepo adapter.RoomRepository) *GetPropertyUseCase {
	return &GetPropertyUseCase{propertyRepo: propertyRepo, roomRepo: roomRepo}
}

// Execute fetches the property and its rooms.
func (uc *GetPropertyUseCase) Execute(ctx context.Context, input GetPropertyInput) (*GetPropertyOutput, error) {
	property, err := findOwnedProperty(ctx, uc.propertyRepo, input.UserID, input.PropertyID)
	if err != nil {
		return nil, err
	}

	rooms, err := uc.roomRepo.FindByPropertyID(ctx, property.ID)
	if err != nil {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodePropertyInternalError,
			"failed to list rooms",
			err,
		)
	}

	return &GetPropertyOutput{Property: property, Rooms: rooms}, nil
}

// findOwnedProperty loads a property and verifies it belongs to the user.
// A property owned by another user is reported as not found.
func findOwnedProperty(ctx context.Context, repo adapter.PropertyRepository, userID, propertyID uuid.UUID) (*entity.Property, error) {
	property, err := repo.FindByID(ctx, propertyID)
	if err != nil || property == nil {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodePropertyNotFound,
			"property not found",
			domainerror.ErrPropertyNotFound,
		)
	}
	if property.UserID != userID {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodePropertyNotFound,
			"property not found",
			domainerror.ErrPropertyNotFound,
		)
	}
	return property, nil
}
