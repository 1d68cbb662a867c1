package property

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
)

// CreateRoomInput represents the input for room creation.
type CreateRoomInput struct {
	UserID      uuid.UUID
	PropertyID  uuid.UUID
	Name        string
	MonthlyRent decimal.Decimal
	SizeSqm     *decimal.Decimal
	Furnished   bool
}

// CreateRoomOutput represents the output of room creation.
type CreateRoomOutput struct {
	Room *entity.Room
}

// CreateRoomUseCase handles room creation logic.
type CreateRoomUseCase struct {
	propertyRepo adapter.PropertyRepository
	roomRepo     adapter.RoomRepository
}

// NewCreateRoomUseCase creates a new CreateRoomUseCase instance.
func NewCreateRoomUseCase(propertyRepo adapter.PropertyRepository, roomRepo adapter.RoomRepository) *CreateRoomUseCase {
	return &CreateRoomUseCase{propertyRepo: propertyRepo, roomRepo: roomRepo}
}

// Execute performs the room creation.
func (uc *CreateRoomUseCase) Execute(ctx context.Context, input CreateRoomInput) (*CreateRoomOutput, error) {
	property, err := findOwnedProperty(ctx, uc.propertyRepo, input.UserID, input.PropertyID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodeRoomNameRequired,
			"room name is required",
			domainerror.ErrRoomNameRequired,
		)
	}
	if input.MonthlyRent.IsNegative() {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodeInvalidMonthlyRent,
			"monthly rent must not be negative",
			domainerror.ErrInvalidMonthlyRent,
		)
	}

	room := entity.NewRoom(property.ID, strings.TrimSpace(input.Name), input.MonthlyRent, input.SizeSqm, input.Furnished)
	if err := uc.roomRepo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	return &CreateRoomOutput{Room: room}, nil
}
